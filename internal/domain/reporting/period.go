package reporting

import (
	"strings"
	"time"

	"github.com/ignatzorin/tecsolutions-backend/internal/pkg/apperror"
)

const DateLayout = "2006-01-02"

// DateRange: период отчёта, обе границы включительно.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// DefaultRange: с первого числа текущего месяца по конец сегодняшнего дня.
func DefaultRange(now time.Time) DateRange {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return DateRange{Start: start, End: endOfDay(now)}
}

// ParseRange разбирает даты YYYY-MM-DD; пустые значения берутся из диапазона по умолчанию.
// Конец растягивается до последнего мгновения дня.
func ParseRange(start, end string, now time.Time) (DateRange, error) {
	r := DefaultRange(now)
	loc := now.Location()

	if s := strings.TrimSpace(start); s != "" {
		t, err := time.ParseInLocation(DateLayout, s, loc)
		if err != nil {
			return DateRange{}, apperror.New(apperror.ErrCodeBadRequest, "некорректная дата начала: "+s)
		}
		r.Start = t
	}
	if e := strings.TrimSpace(end); e != "" {
		t, err := time.ParseInLocation(DateLayout, e, loc)
		if err != nil {
			return DateRange{}, apperror.New(apperror.ErrCodeBadRequest, "некорректная дата окончания: "+e)
		}
		r.End = endOfDay(t)
	}
	if r.End.Before(r.Start) {
		return DateRange{}, apperror.New(apperror.ErrCodeBadRequest, "дата окончания раньше даты начала")
	}
	return r, nil
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Label: подпись периода, например "2024-03-01 a 2024-03-31".
func (r DateRange) Label() string {
	return r.Start.Format(DateLayout) + " a " + r.End.Format(DateLayout)
}

// ExportFileName: имя файла выгрузки отчёта.
func (r DateRange) ExportFileName() string {
	return "relatorio_" + r.Start.Format(DateLayout) + "_" + r.End.Format(DateLayout) + ".json"
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
