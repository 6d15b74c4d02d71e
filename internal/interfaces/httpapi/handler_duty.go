package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/omerdahan/seatduty/internal/usecase"
)

// allocationCycleRequest carries the optional per-call deadline, in seconds.
type allocationCycleRequest struct {
	Timeout int `validate:"gte=0,lte=600"`
}

// RunAllocationCycle triggers one full fetch-and-assign pass. The call is
// idempotent: games that are already staffed come back as already_staffed
// and no user is ever assigned to the same game twice.
func (h *Handler) RunAllocationCycle(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunAllocationCycle")
	defer span.End()

	req, err := parseAllocationCycleRequest(r)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validator.Struct(req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	}

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.Timeout)*time.Second)
		defer cancel()
	}

	report, err := h.dutyService.RunCycle(ctx, h.now())
	if err != nil {
		h.logger.ErrorContext(ctx, "allocation cycle failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "allocation cycle finished",
		"total_games", report.TotalGames,
		"assignments_made", len(report.AssignmentsMade),
	)

	writeSuccess(ctx, w, http.StatusOK, report)
}

func parseAllocationCycleRequest(r *http.Request) (allocationCycleRequest, error) {
	req := allocationCycleRequest{}

	raw := strings.TrimSpace(r.URL.Query().Get("timeout"))
	if raw == "" {
		return req, nil
	}

	timeout, err := strconv.Atoi(raw)
	if err != nil {
		return req, fmt.Errorf("timeout must be an integer number of seconds")
	}
	req.Timeout = timeout
	return req, nil
}
