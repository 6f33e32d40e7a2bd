package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"lshsim/internal/lsh"
)

func count(n int) string {
	return humanize.Comma(int64(n))
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func ratio(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(10 * time.Millisecond).String()
}

func formatWhen(t time.Time) string {
	return fmt.Sprintf("%s (%s)", t.Local().Format("2006-01-02 15:04"), humanize.Time(t))
}

func joinUint32(values []uint32) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(uint64(v), 10)
	}
	return strings.Join(parts, " ")
}

func formatSignature(sig lsh.Signature) string {
	return joinUint32(sig)
}

func formatBands(bands lsh.BandVector) string {
	return joinUint32(bands)
}
