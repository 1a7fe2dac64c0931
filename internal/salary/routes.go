package salary

import "github.com/go-chi/chi/v5"

// CalculatePath is the endpoint the landing page posts to.
const CalculatePath = "/calcular-salario"

// RegisterRoutes mounts the salary endpoints onto the given router.
func RegisterRoutes(r chi.Router) {
	r.Post(CalculatePath, Calculate)
}
