package parser

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/nlogconv/nlogconv-go/pkg/nlog/record"
)

func plainBlock(lines ...string) string {
	return PlainDelimiter + "\n" + strings.Join(lines, "\n") + "\n"
}

func windowsEvent(level, data string) string {
	return "<Event xmlns='http://schemas.microsoft.com/win/2004/08/events/event'><System>" +
		"<Provider Name='Application Error'/><EventID Qualifiers='0'>1000</EventID>" +
		"<Level>" + level + "</Level>" +
		"<TimeCreated SystemTime='2020-01-02T10:20:30.000000000Z'/></System>" +
		"<EventData>" + data + "</EventData></Event>"
}

func wcfEvent(appData string) string {
	return `<E2ETraceEvent xmlns="http://schemas.microsoft.com/2004/06/E2ETraceEvent">` +
		`<System xmlns="http://schemas.microsoft.com/2004/06/windows/eventlog/system">` +
		`<EventID>0</EventID><Type>3</Type><SubType Name="Warning">0</SubType><Level>4</Level>` +
		`<TimeCreated SystemTime="2020-01-02T10:20:30.1234567Z" />` +
		`<Source Name="System.ServiceModel" />` +
		`<Execution ProcessName="svc" ProcessID="1" ThreadID="2" /><Computer>HOST</Computer></System>` +
		`<ApplicationData>` + appData + `</ApplicationData></E2ETraceEvent>`
}

func TestExtract(t *testing.T) {
	re := regexp.MustCompile(`<Data>([\s\S]*?)</Data>`)

	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{"single line", "<Data>hello</Data>", "hello", true},
		{"trimmed", "<Data>  hello \n</Data>", "hello", true},
		{"spans lines", "x\n<Data>a\nb</Data>\ny", "a\nb", true},
		{"first occurrence", "<Data>one</Data><Data>two</Data>", "one", true},
		{"empty capture", "<Data></Data>", "", true},
		{"no match", "<Other>hello</Other>", "", false},
		{"empty text", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(re, tt.text)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Extract() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtract_NoCaptureGroup(t *testing.T) {
	if _, ok := Extract(regexp.MustCompile(`abc`), "abc"); ok {
		t.Error("Extract() without capture group = ok, want not ok")
	}
}

func TestPlainDelimiterLength(t *testing.T) {
	if len(PlainDelimiter) != 40 || strings.Trim(PlainDelimiter, "-") != "" {
		t.Errorf("PlainDelimiter = %q, want 40 dashes", PlainDelimiter)
	}
}

func TestConvertPlain(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "all fields",
			input: plainBlock("Time: 1.2.2020 10:20:30.123", "Type: Information", "Source: X", "Comment: Y"),
			want:  "2020-2-1 10:20:30.123|INFO|X|Y",
		},
		{
			name:  "missing type defaults to INFO",
			input: plainBlock("Time: 1.2.2020 10:20:30.123", "Source: X", "Comment: Y"),
			want:  "2020-2-1 10:20:30.123|INFO|X|Y",
		},
		{
			name:  "missing source defaults to UNKNOWN",
			input: plainBlock("Time: 1.2.2020 10:20:30.123", "Type: Information", "Comment: Y"),
			want:  "2020-2-1 10:20:30.123|INFO|UNKNOWN|Y",
		},
		{
			name:  "level is uppercased",
			input: plainBlock("Time: 15.11.2021 01:02:03.4", "Type: Warning", "Source: Svc", "Comment: careful"),
			want:  "2021-11-15 01:02:03.4|WARNING|Svc|careful",
		},
		{
			name:  "multi-line comment",
			input: plainBlock("Time: 1.2.2020 10:20:30.123", "Type: Error", "Source: X", "Comment: first", "  second", "third  ", ""),
			want:  "2020-2-1 10:20:30.123|ERROR|X|first\n  second\nthird",
		},
		{
			name:  "missing comment leaves empty message",
			input: plainBlock("Time: 1.2.2020 10:20:30.123", "Type: Information", "Source: X"),
			want:  "2020-2-1 10:20:30.123|INFO|X|",
		},
		{
			name:  "trailing text after time is ignored",
			input: plainBlock("Time: 1.2.2020 10:20:30.123 (UTC)", "Comment: Y"),
			want:  "2020-2-1 10:20:30.123|INFO|UNKNOWN|Y",
		},
		{
			name:  "CRLF line endings",
			input: PlainDelimiter + "\r\nTime: 1.2.2020 10:20:30.123\r\nType: Information\r\nSource: X\r\nComment: Y\r\n",
			want:  "2020-2-1 10:20:30.123|INFO|X|Y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ConvertPlain(tt.input)
			if err != nil {
				t.Fatalf("ConvertPlain() error = %v", err)
			}
			if got := rec.String(); got != tt.want {
				t.Errorf("ConvertPlain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertPlain_TimestampErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"missing time", plainBlock("Type: Information", "Comment: Y"), record.ErrNoMatch},
		{"textual date", plainBlock("Time: yesterday", "Comment: Y"), record.ErrMalformed},
		{"missing milliseconds", plainBlock("Time: 1.2.2020 10:20:30", "Comment: Y"), record.ErrMalformed},
		{"iso date", plainBlock("Time: 2020-02-01 10:20:30.123", "Comment: Y"), record.ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertPlain(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ConvertPlain() error = %v, want %v", err, tt.wantErr)
			}
			var fe *record.FieldError
			if !errors.As(err, &fe) || fe.Field != "timestamp" {
				t.Errorf("ConvertPlain() error = %v, want timestamp FieldError", err)
			}
		})
	}
}

func TestConvertWindowsEvent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "info level",
			input: windowsEvent("2", "<Data>crash in app.exe</Data>"),
			want:  "2020-01-02 10:20:30.000000000Z|INFO|Application Error|crash in app.exe",
		},
		{
			name:  "fatal level",
			input: windowsEvent("5", "<Data>boom</Data>"),
			want:  "2020-01-02 10:20:30.000000000Z|FATAL|Application Error|boom",
		},
		{
			name:  "trace level",
			input: windowsEvent("0", "<Data>x</Data>"),
			want:  "2020-01-02 10:20:30.000000000Z|TRACE|Application Error|x",
		},
		{
			name:  "first data element wins",
			input: windowsEvent("4", "<Data>first</Data><Data>second</Data>"),
			want:  "2020-01-02 10:20:30.000000000Z|ERROR|Application Error|first",
		},
		{
			name:  "multi-line data",
			input: windowsEvent("3", "<Data>\nline one\nline two\n</Data>"),
			want:  "2020-01-02 10:20:30.000000000Z|WARN|Application Error|line one\nline two",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ConvertWindowsEvent(tt.input)
			if err != nil {
				t.Fatalf("ConvertWindowsEvent() error = %v", err)
			}
			if got := rec.String(); got != tt.want {
				t.Errorf("ConvertWindowsEvent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertWindowsEvent_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantField string
		wantErr   error
	}{
		{"level out of range", windowsEvent("6", "<Data>x</Data>"), "level", record.ErrLevelOutOfRange},
		{"huge level", windowsEvent("99999999999999999999", "<Data>x</Data>"), "level", record.ErrLevelOutOfRange},
		{"missing data", windowsEvent("2", ""), "message", record.ErrNoMatch},
		{
			name:      "missing level",
			input:     strings.Replace(windowsEvent("2", "<Data>x</Data>"), "<Level>2</Level>", "", 1),
			wantField: "level",
			wantErr:   record.ErrNoMatch,
		},
		{
			name:      "missing provider",
			input:     strings.Replace(windowsEvent("2", "<Data>x</Data>"), "<Provider Name='Application Error'/>", "", 1),
			wantField: "source",
			wantErr:   record.ErrNoMatch,
		},
		{
			name:      "missing time",
			input:     strings.Replace(windowsEvent("2", "<Data>x</Data>"), "SystemTime=", "Time=", 1),
			wantField: "timestamp",
			wantErr:   record.ErrNoMatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertWindowsEvent(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ConvertWindowsEvent() error = %v, want %v", err, tt.wantErr)
			}
			var fe *record.FieldError
			if !errors.As(err, &fe) || fe.Field != tt.wantField {
				t.Errorf("ConvertWindowsEvent() error = %v, want %s FieldError", err, tt.wantField)
			}
		})
	}
}

func TestConvertWCF(t *testing.T) {
	tests := []struct {
		name    string
		appData string
		want    string
	}{
		{
			name:    "message only",
			appData: "<Message>Boom</Message>",
			want:    "2020-01-02 10:20:30.1234567Z|WARNING|System.ServiceModel|Boom",
		},
		{
			name:    "no message",
			appData: "<TraceRecord/>",
			want:    "2020-01-02 10:20:30.1234567Z|WARNING|System.ServiceModel|" + WCFNoMessage,
		},
		{
			name:    "empty message uses placeholder",
			appData: "<Message>  </Message>",
			want:    "2020-01-02 10:20:30.1234567Z|WARNING|System.ServiceModel|" + WCFNoMessage,
		},
		{
			name: "details appended in fixed order",
			appData: "<TraceRecord><Description>Handling an exception.</Description>" +
				"<Exception><Message>Boom</Message><StackTrace>at A.B()</StackTrace>" +
				"<ExceptionString>System.Exception: Boom</ExceptionString></Exception></TraceRecord>",
			want: "2020-01-02 10:20:30.1234567Z|WARNING|System.ServiceModel|" +
				"Boom\nHandling an exception.\nSystem.Exception: Boom\nat A.B()",
		},
		{
			name:    "details without message",
			appData: "<Description>Throwing an exception.</Description><StackTrace>\n at X()\n at Y()\n</StackTrace>",
			want: "2020-01-02 10:20:30.1234567Z|WARNING|System.ServiceModel|" +
				WCFNoMessage + "\nThrowing an exception.\nat X()\n at Y()",
		},
		{
			name:    "empty detail is skipped",
			appData: "<Message>m</Message><Description></Description>",
			want:    "2020-01-02 10:20:30.1234567Z|WARNING|System.ServiceModel|m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := ConvertWCF(wcfEvent(tt.appData))
			if err != nil {
				t.Fatalf("ConvertWCF() error = %v", err)
			}
			if got := rec.String(); got != tt.want {
				t.Errorf("ConvertWCF() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertWCF_Errors(t *testing.T) {
	base := wcfEvent("<Message>m</Message>")

	tests := []struct {
		name      string
		input     string
		wantField string
	}{
		{"missing time", strings.Replace(base, `SystemTime="2020-01-02T10:20:30.1234567Z"`, "", 1), "timestamp"},
		{"missing subtype", strings.Replace(base, `<SubType Name="Warning">0</SubType>`, "", 1), "level"},
		{"missing source", strings.Replace(base, `<Source Name="System.ServiceModel" />`, "", 1), "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ConvertWCF(tt.input)
			if !errors.Is(err, record.ErrNoMatch) {
				t.Fatalf("ConvertWCF() error = %v, want ErrNoMatch", err)
			}
			var fe *record.FieldError
			if !errors.As(err, &fe) || fe.Field != tt.wantField {
				t.Errorf("ConvertWCF() error = %v, want %s FieldError", err, tt.wantField)
			}
		})
	}
}
