package dto

import "github.com/shopspring/decimal"

// DashboardResponse respuesta de GET /api/dashboard/:companyId.
// Resume el estado del programa de una empresa: perfil, avance de sesiones,
// próxima sesión agendada, sistemas y efecto total con ROI.
type DashboardResponse struct {
	Company      CompanyResponse      `json:"company"`
	SessionStats SessionStatsResponse `json:"session_stats"`
	NextSession  *SessionResponse     `json:"next_session"`
	Systems      []SystemResponse     `json:"systems"`
	TotalEffect  TotalEffectResponse  `json:"total_effect"`
}

// TotalEffectResponse ahorro acumulado y ROI contra el monto de contrato.
type TotalEffectResponse struct {
	TimeReduction decimal.Decimal `json:"time_reduction"` // horas/día acumuladas
	CostReduction decimal.Decimal `json:"cost_reduction"` // unidades de ahorro
	ROI           decimal.Decimal `json:"roi"`            // % sobre el contrato
}
