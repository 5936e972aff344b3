package api

import (
	"context"
	"log"

	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/config"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/idgen"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/requests"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/responses"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/schedulers"
	"github.com/Nayan-Dubey/CPU-Scheduling-Algorithm/internal/tracing"
	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ListAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

// AllAlgorithms runs every policy over the same jobs, keyed by algorithm.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	results := make(map[string]responses.ScheduleResponse, len(schedulers.Algorithms))
	for _, algorithm := range schedulers.Algorithms {
		response, err := s.run(ctx.UserContext(), algorithm, request)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		results[string(algorithm)] = response
	}
	return ctx.JSON(results)
}

type algorithmInfo struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	Choice       int    `json:"choice"`
	NeedsQuantum bool   `json:"needs_quantum"`
}

func (s *SchedulerHandlerImpl) ListAlgorithms(ctx *fiber.Ctx) error {
	list := make([]algorithmInfo, len(schedulers.Algorithms))
	for i, algorithm := range schedulers.Algorithms {
		list[i] = algorithmInfo{
			Id:           string(algorithm),
			Name:         algorithm.Title(),
			Choice:       i + 1,
			NeedsQuantum: algorithm.NeedsQuantum(),
		}
	}
	return ctx.JSON(list)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parse(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
	}
	response, err := s.run(ctx.UserContext(), algorithm, request)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(response)
}

// parse decodes the body; a missing time_quantum falls back to the configured one.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, err
	}
	if request.TimeQuantum == 0 {
		request.TimeQuantum = s.config.RoundRobinTimeQuantum
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) run(ctx context.Context, algorithm schedulers.Algorithm, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	_, span := tracing.StartSpan(ctx, "schedule "+string(algorithm))
	span.WithString("algorithm", string(algorithm)).WithAttributes(map[string]int{
		"processes":    len(request.Jobs),
		"time_quantum": request.TimeQuantum,
	})
	response, err := schedulers.Schedule(algorithm, request)
	span.End(err)
	if err != nil {
		log.Println(algorithm, "rejected:", err)
		return responses.ScheduleResponse{}, err
	}
	response.RunId = idgen.New()
	log.Println("run:", response.RunId, algorithm, "scheduled", len(request.Jobs), "processes")
	return response, nil
}
