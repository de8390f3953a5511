package nlog_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"

	"github.com/nlogconv/nlogconv-go/pkg/nlog"
)

func TestReaderSource_KeepsTerminators(t *testing.T) {
	input := "a\r\nb\n\nc"
	src := nlog.NewReaderSource(strings.NewReader(input))

	var lines []string
	for {
		line, err := src.Next(context.Background())
		if err != nil {
			break
		}
		lines = append(lines, line)
	}
	assert.Equal(t, []string{"a\r\n", "b\n", "\n", "c"}, lines)
}

func TestReaderSource_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024) + "\n"
	src := nlog.NewReaderSource(strings.NewReader(long))
	assert.Equal(t, long, readAll(t, src))
}

func TestReaderSource_UTF8BOM(t *testing.T) {
	src := nlog.NewReaderSource(strings.NewReader("\ufeff" + dashes + "\n"))
	assert.Equal(t, dashes+"\n", readAll(t, src))
}

func TestReaderSource_UTF16(t *testing.T) {
	input := "<Events><Event>ü</Event></Events>\r\n"

	for name, endian := range map[string]unicode.Endianness{
		"little endian": unicode.LittleEndian,
		"big endian":    unicode.BigEndian,
	} {
		t.Run(name, func(t *testing.T) {
			encoded, err := unicode.UTF16(endian, unicode.UseBOM).NewEncoder().String(input)
			require.NoError(t, err)

			src := nlog.NewReaderSource(strings.NewReader(encoded))
			assert.Equal(t, input, readAll(t, src))
		})
	}
}

func TestReaderSource_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := nlog.NewReaderSource(strings.NewReader("a\n")).Next(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
