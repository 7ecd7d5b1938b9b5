package dto

// FridgeViewsResponse vistas derivadas del inventario, recomputadas bajo
// demanda a partir de la foto actual de las colecciones.
type FridgeViewsResponse struct {
	GroupedByCategory map[string][]ItemResponse `json:"grouped_by_category"`
	GroupedByStatus   map[string][]ItemResponse `json:"grouped_by_status"`
	LowStock          []ItemResponse            `json:"low_stock"`
	ExpiringSoon      []ItemResponse            `json:"expiring_soon"`
}

// StatsResponse estadísticas agregadas. Los subcontadores usan el status
// almacenado, no la heurística de cantidades de low_stock.
type StatsResponse struct {
	Total      int `json:"total"`
	LowStock   int `json:"low_stock"`
	Expired    int `json:"expired"`
	OutOfStock int `json:"out_of_stock"`
}

// NamedayResponse respuesta de GET /api/calendar/nameday.
type NamedayResponse struct {
	Date  string   `json:"date"` // YYYY-MM-DD
	Names []string `json:"names"`
}
