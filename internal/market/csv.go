package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// LoadCSV reads candles from a CSV file. The header row must contain at
// least a "close" column; "ts", "open", "high", "low", and "volume" are
// recognized when present. Timestamps are RFC 3339 or unix seconds.
func LoadCSV(path string) ([]Candle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open candles: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read candles: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("candle file %s has no data rows", path)
	}

	cols := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	closeIdx, ok := cols["close"]
	if !ok {
		return nil, fmt.Errorf("candle file %s missing close column", path)
	}

	candles := make([]Candle, 0, len(rows)-1)
	for n, row := range rows[1:] {
		c := Candle{}
		c.Close, err = strconv.ParseFloat(strings.TrimSpace(row[closeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: parse close: %w", n+2, err)
		}
		if i, ok := cols["open"]; ok && i < len(row) {
			c.Open, _ = strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		}
		if i, ok := cols["high"]; ok && i < len(row) {
			c.High, _ = strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		}
		if i, ok := cols["low"]; ok && i < len(row) {
			c.Low, _ = strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		}
		if i, ok := cols["volume"]; ok && i < len(row) {
			c.Volume, _ = strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		}
		if i, ok := cols["ts"]; ok && i < len(row) {
			c.Ts = parseTs(strings.TrimSpace(row[i]))
		}
		candles = append(candles, c)
	}
	return candles, nil
}

func parseTs(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC()
	}
	return time.Time{}
}
