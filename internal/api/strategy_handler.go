package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gocoach/domain/factors"
	"gocoach/domain/strategy"
	"gocoach/internal/errors"
	"gocoach/internal/guidance"
	"gocoach/internal/scoring"
	"gocoach/ports"
)

const maxBodyBytes = 64 << 10

// StrategyHandler serves the publication strategy decision endpoints
type StrategyHandler struct {
	evaluator ports.StrategyEvaluator
	ruleset   scoring.Ruleset
	logger    *zap.Logger
}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler(evaluator ports.StrategyEvaluator, ruleset scoring.Ruleset, logger *zap.Logger) *StrategyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StrategyHandler{
		evaluator: evaluator,
		ruleset:   ruleset,
		logger:    logger,
	}
}

// DecideResponse is the evaluation plus the static guidance for its verdict
type DecideResponse struct {
	strategy.Result
	Factors       factors.Factors `json:"factors"`
	Unmapped      []factors.Field `json:"unmapped"`
	Justification string          `json:"justification"`
	Questions     []string        `json:"questions"`
}

// RulesResponse describes the tables the engine scores with
type RulesResponse struct {
	scoring.Ruleset
	Hash string `json:"fingerprint"`
}

// HealthResponse reports liveness and, when results are memoized, cache counters
type HealthResponse struct {
	Status string             `json:"status"`
	Memo   *scoring.MemoStats `json:"memo,omitempty"`
}

// Health reports that the API is serving
func (h *StrategyHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok"}
	if memo, ok := h.evaluator.(*scoring.Memo); ok {
		stats := memo.Stats()
		resp.Memo = &stats
	}
	c.JSON(http.StatusOK, resp)
}

// Options returns the closed input sets and the form defaults
func (h *StrategyHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, factors.Options())
}

// Decide evaluates the Decision Factors in the request body.
// Out-of-set values are not an error; they are listed under "unmapped".
func (h *StrategyHandler) Decide(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
	raw, err := c.GetRawData()
	if err != nil {
		respondError(c, errors.Wrap(errors.InvalidInput(err.Error()), "failed to read request body"))
		return
	}
	if !factors.IsObject(raw) {
		respondError(c, errors.InvalidInput("request body must be a JSON object"))
		return
	}

	f := factors.FromJSON(raw)
	res := h.evaluator.Evaluate(f)
	unmapped := f.Unmapped()
	if unmapped == nil {
		unmapped = []factors.Field{}
	}

	if len(unmapped) > 0 {
		h.logger.Warn("Decision factors outside closed sets",
			zap.String("request_id", c.GetString(requestIDKey)),
			zap.Any("unmapped", unmapped))
	}
	h.logger.Debug("Strategy decided",
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Stringer("factors", f),
		zap.String("verdict", string(res.Verdict)),
		zap.Int("delta", res.Delta))

	c.JSON(http.StatusOK, DecideResponse{
		Result:        res,
		Factors:       f,
		Unmapped:      unmapped,
		Justification: guidance.Justification(res.Verdict),
		Questions:     guidance.SupervisorQuestions(),
	})
}

// Rules returns the base score table and modifier rule set
func (h *StrategyHandler) Rules(c *gin.Context) {
	c.JSON(http.StatusOK, RulesResponse{
		Ruleset: h.ruleset,
		Hash:    h.ruleset.Fingerprint().String(),
	})
}

func respondError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errors.HTTPStatus(err), gin.H{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}
