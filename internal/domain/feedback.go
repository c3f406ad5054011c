package domain

import "time"

// Feedback é uma mensagem livre enviada pelo formulário do dashboard.
// Não possui validação e não interfere nas métricas.
type Feedback struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Purpose   string    `json:"purpose"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
