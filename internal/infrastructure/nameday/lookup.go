// Package nameday resuelve el santoral del día a partir de un dataset CSV
// embebido en el binario. Cada fila es MM-DD,nombres (separados por ";").
package nameday

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"strings"
	"time"
)

//go:embed namedays.csv
var namedaysCSV []byte

// Lookup índice en memoria del santoral, clave MM-DD.
type Lookup struct {
	byDay map[string][]string
}

// NewLookup parsea el CSV embebido y construye el índice.
func NewLookup() (*Lookup, error) {
	reader := csv.NewReader(bytes.NewReader(namedaysCSV))
	reader.FieldsPerRecord = 2

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear santoral: %w", err)
	}

	byDay := make(map[string][]string, len(records))
	for _, rec := range records {
		names := strings.Split(rec[1], ";")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		byDay[rec[0]] = names
	}
	return &Lookup{byDay: byDay}, nil
}

// Names devuelve los nombres del día dado; ok=false si el dataset no tiene
// entrada para esa fecha.
func (l *Lookup) Names(date time.Time) ([]string, bool) {
	names, ok := l.byDay[date.Format("01-02")]
	return names, ok
}
