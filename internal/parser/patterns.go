package parser

import "regexp"

// Markers used to split the raw streams into records.
const (
	// PlainDelimiter starts every block of a plain text log.
	PlainDelimiter = "----------------------------------------"

	// WindowsEventEndMarker closes an event in a Windows Event XML export.
	WindowsEventEndMarker = "</Event>"

	// WCFEndMarker closes an event in a WCF trace XML export.
	WCFEndMarker = "</E2ETraceEvent>"
)

// Plain text log patterns.
//
// Block layout:
//
//	----------------------------------------
//	Time: 1.2.2020 10:20:30.123
//	Type: Information
//	Source: Service
//	Comment: free text,
//	possibly spanning several lines
var (
	// Captures: (1) raw time value, e.g. "1.2.2020 10:20:30.123"
	plainTimePattern = regexp.MustCompile(`Time:\s*([^\n]+)`)

	// Matches: "1.2.2020 10:20:30.123" at the start of the time value
	// Captures: (1) day (2) month (3) year (4) clock
	plainTimeLayoutPattern = regexp.MustCompile(`^(\d+)\.(\d+)\.(\d+)\s+(\d+:\d+:\d+\.\d+)`)

	// Captures: (1) level name, e.g. "Information"
	plainLevelPattern = regexp.MustCompile(`Type:\s*([^\n]+)`)

	// Captures: (1) source name
	plainSourcePattern = regexp.MustCompile(`Source:\s*([^\n]+)`)

	// Captures: (1) everything after "Comment:" up to the end of the block
	plainCommentPattern = regexp.MustCompile(`Comment:\s*([\s\S]+)`)
)

// Windows Event XML patterns. Attributes use single quotes in exports
// produced by Event Viewer and wevtutil.
var (
	// Matches: <TimeCreated SystemTime='2020-01-02T10:20:30.1234567Z'/>
	// Captures: (1) ISO 8601 timestamp
	windowsTimePattern = regexp.MustCompile(`TimeCreated\s+SystemTime='([^"]+?)'`)

	// Matches: <Level>2</Level>
	// Captures: (1) numeric severity
	windowsLevelPattern = regexp.MustCompile(`<Level>(\d+)</Level>`)

	// Matches: <Provider Name='Application Error'/>
	// Captures: (1) provider name
	windowsSourcePattern = regexp.MustCompile(`Provider\s+Name='([^']+?)'`)

	// Captures: (1) content of the first <Data> element
	windowsDataPattern = regexp.MustCompile(`<Data>([\s\S]*?)</Data>`)
)

// windowsLevels maps the numeric <Level> of an event to a level name.
var windowsLevels = []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

// WCF trace XML patterns. Attributes use double quotes.
var (
	// Matches: <TimeCreated SystemTime="2020-01-02T10:20:30.1234567Z" />
	// Captures: (1) ISO 8601 timestamp
	wcfTimePattern = regexp.MustCompile(`TimeCreated\s+SystemTime="([^"]+?)"`)

	// Matches: <SubType Name="Warning">0</SubType>
	// Captures: (1) level name
	wcfLevelPattern = regexp.MustCompile(`SubType\s+Name="([^"]+?)"`)

	// Matches: <Source Name="System.ServiceModel" />
	// Captures: (1) source name
	wcfSourcePattern = regexp.MustCompile(`Source\s+Name="([^"]+?)"`)

	wcfMessagePattern     = regexp.MustCompile(`<Message>([\s\S]*?)</Message>`)
	wcfDescriptionPattern = regexp.MustCompile(`<Description>([\s\S]*?)</Description>`)
	wcfExceptionPattern   = regexp.MustCompile(`<ExceptionString>([\s\S]*?)</ExceptionString>`)
	wcfStackTracePattern  = regexp.MustCompile(`<StackTrace>([\s\S]*?)</StackTrace>`)
)

// wcfDetailPatterns are appended to the message in this order when present.
var wcfDetailPatterns = []*regexp.Regexp{
	wcfDescriptionPattern,
	wcfExceptionPattern,
	wcfStackTracePattern,
}

// WCFNoMessage replaces the message of a WCF event without <Message>.
const WCFNoMessage = "*** NO MESSAGE ***"

// Magic strings identifying each format near the start of a file.
const (
	WCFMagic          = "<E2ETraceEvent"
	WindowsEventMagic = "<Events><Event"
	PlainMagic        = PlainDelimiter
)
