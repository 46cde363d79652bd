package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDateInLocation interpreta YYYY-MM-DD como o início do dia no fuso informado.
// String vazia retorna nil sem erro.
func ParseDateInLocation(dateStr string, loc *time.Location) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	if loc == nil {
		loc = time.UTC
	}

	date, err := time.ParseInLocation(DateLayout, dateStr, loc)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

// StartOfDay trunca o horário para 00:00 no fuso informado
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}

	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
