package usecases

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gin-gonic/gin/binding"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/infrastructure/metrics"
	"resolution-desk.backend/pkg/logger"
)

// Tool names exposed to the agent layer
const (
	ToolAnalyzeSituation        = "analyze_situation"
	ToolCollectEvidence         = "collect_evidence"
	ToolResolve                 = "resolve"
	ToolCheckCustomer           = "check_customer"
	ToolCheckDriver             = "check_driver"
	ToolCheckMerchant           = "check_merchant"
	ToolCheckOrder              = "check_order"
	ToolIssueRefund             = "issue_refund"
	ToolExonerateDriver         = "exonerate_driver"
	ToolLogMerchantFeedback     = "log_merchant_feedback"
	ToolAssessEligibility       = "assess_eligibility"
	ToolCreateIncident          = "create_incident"
	ToolCreateOrder             = "create_order"
	ToolOfferVoucher            = "offer_voucher"
	ToolEscalateToHuman         = "escalate_to_human"
	ToolResolveComplaint        = "resolve_complaint"
	ToolCheckSubstitutionPolicy = "check_substitution_policy"
	ToolTrackDelivery           = "track_delivery"
	ToolAnalyzeRoute            = "analyze_route"
	ToolCheckWeather            = "check_weather"
	ToolContactDriver           = "contact_driver"
	ToolContactMerchant         = "contact_merchant"
)

type toolFunc func(ctx context.Context, raw []byte) entities.ActionResult

// Toolkit dispatches named operations with structured JSON arguments.
type Toolkit struct {
	tools map[string]toolFunc
}

// NewToolkit registers every named operation
func NewToolkit(investigation *InvestigationUsecase, actions *ActionExecutor, resolution *ResolutionUsecase) *Toolkit {
	resolve := func(ctx context.Context, in entities.ResolveInput) entities.ActionResult {
		outcome, err := resolution.Resolve(ctx, in)
		if err != nil {
			result := failed(err, "")
			if errors.Is(err, domainerrors.ErrNotFound) {
				result.Message = customerOrOrderNotFound
			}
			result.Data = outcome
			return result
		}
		return ok(outcome.Narrative, outcome)
	}

	return &Toolkit{tools: map[string]toolFunc{
		ToolAnalyzeSituation:        bind(investigation.AnalyzeSituation),
		ToolCollectEvidence:         bind(investigation.CollectEvidence),
		ToolResolve:                 bind(resolve),
		ToolCheckCustomer:           bind(investigation.CheckCustomer),
		ToolCheckDriver:             bind(investigation.CheckDriver),
		ToolCheckMerchant:           bind(investigation.CheckMerchant),
		ToolCheckOrder:              bind(investigation.CheckOrder),
		ToolIssueRefund:             bind(actions.IssueRefund),
		ToolExonerateDriver:         bind(actions.ExonerateDriver),
		ToolLogMerchantFeedback:     bind(actions.LogMerchantFeedback),
		ToolAssessEligibility:       bind(investigation.AssessEligibility),
		ToolCreateIncident:          bind(actions.CreateIncident),
		ToolCreateOrder:             bind(actions.CreateOrder),
		ToolOfferVoucher:            bind(actions.OfferVoucher),
		ToolEscalateToHuman:         bind(actions.EscalateToHuman),
		ToolResolveComplaint:        bind(actions.ResolveComplaint),
		ToolCheckSubstitutionPolicy: bind(investigation.CheckSubstitutionPolicy),
		ToolTrackDelivery:           bind(investigation.TrackDelivery),
		ToolAnalyzeRoute:            bind(investigation.AnalyzeRoute),
		ToolCheckWeather:            bind(investigation.CheckWeather),
		ToolContactDriver:           bind(investigation.ContactDriver),
		ToolContactMerchant:         bind(investigation.ContactMerchant),
	}}
}

// bind decodes and validates the raw arguments before calling run.
func bind[T any](run func(context.Context, T) entities.ActionResult) toolFunc {
	return func(ctx context.Context, raw []byte) entities.ActionResult {
		if len(raw) == 0 {
			raw = []byte("{}")
		}
		var in T
		if err := binding.JSON.BindBody(raw, &in); err != nil {
			return entities.ActionResult{
				Success: false,
				Code:    domainerrors.CodeMalformedInput,
				Message: fmt.Sprintf("Invalid arguments: %s", err.Error()),
			}
		}
		return run(ctx, in)
	}
}

// Invoke runs the named operation. It never returns an error; failures are
// reported on the result.
func (t *Toolkit) Invoke(ctx context.Context, name string, raw []byte) entities.ActionResult {
	start := time.Now()

	var result entities.ActionResult
	if fn, found := t.tools[name]; found {
		result = fn(ctx, raw)
	} else {
		name = "unknown"
		result = entities.ActionResult{
			Success: false,
			Code:    domainerrors.CodeUnknownTool,
			Message: fmt.Sprintf("Unknown tool. Available tools: %v", t.Names()),
		}
	}

	metrics.ToolCallsTotal.WithLabelValues(name, metrics.Outcome(result.Success)).Inc()
	logger.LogToolCall(ctx, name, result.Success, result.Code, time.Since(start))
	return result
}

// Names lists the registered tools in sorted order
func (t *Toolkit) Names() []string {
	names := make([]string, 0, len(t.tools))
	for name := range t.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a tool is registered
func (t *Toolkit) Has(name string) bool {
	_, found := t.tools[name]
	return found
}
