package api

import "github.com/gofiber/fiber/v2"

// Register mounts the scheduling endpoints under router.
func Register(router fiber.Router, handler SchedulerHandler) {
	v1 := router.Group("/api/v1")
	{
		v1.Get("/algorithms", handler.ListAlgorithms)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/all", handler.AllAlgorithms)
	}
}
