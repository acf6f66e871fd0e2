package router

import (
	"errors"
	"net/http"

	"github.com/DjordjeVuckovic/green-bench/internal/apperr"
	"github.com/DjordjeVuckovic/green-bench/internal/dashboard"
	"github.com/DjordjeVuckovic/green-bench/internal/domain"
	"github.com/DjordjeVuckovic/green-bench/internal/storage"
	"github.com/DjordjeVuckovic/green-bench/pkg/pagination"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const BasePath = "/api/v1"

type DashboardRouter struct {
	e   *echo.Echo
	svc *dashboard.Service
}

func NewDashboardRouter(e *echo.Echo, svc *dashboard.Service) *DashboardRouter {
	return &DashboardRouter{
		e:   e,
		svc: svc,
	}
}

func (r *DashboardRouter) Bind() {
	g := r.e.Group(BasePath)

	g.GET("/overview", r.overviewHandler)
	g.GET("/status", r.statusHandler)
	g.GET("/algorithms", r.algorithmsHandler)

	g.GET("/footprint", r.footprintHandler)
	g.POST("/footprint/refresh", r.refreshFootprintHandler)
	g.POST("/footprint/estimate", r.estimateHandler)

	g.POST("/analysis", r.analysisHandler)
	g.GET("/analysis/history", r.historyHandler)
	g.GET("/analysis/:id", r.runHandler)

	g.POST("/compare", r.compareHandler)
	g.POST("/optimize", r.optimizeHandler)
	g.POST("/optimize/scenario", r.scenarioHandler)
	g.GET("/optimize/status", r.optimizerStatusHandler)
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return apperr.NewValidationWrap("invalid request", err)
	}
	return nil
}

// overviewHandler godoc
// @Summary Landing page data
// @Description Current footprint, backend status and the algorithm list, fetched concurrently
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.OverviewView
// @Router /api/v1/overview [get]
func (r *DashboardRouter) overviewHandler(c echo.Context) error {
	v, err := r.svc.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// statusHandler godoc
// @Summary Backend status
// @Tags dashboard
// @Produce json
// @Param refresh query bool false "Bypass the cached probe"
// @Success 200 {object} dashboard.StatusView
// @Router /api/v1/status [get]
func (r *DashboardRouter) statusHandler(c echo.Context) error {
	refresh := c.QueryParam("refresh") == "true"
	return c.JSON(http.StatusOK, r.svc.Analyzer.Status(c.Request().Context(), refresh))
}

// algorithmsHandler godoc
// @Summary Algorithms available for benchmarking
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.View[[]domain.Algorithm]
// @Router /api/v1/algorithms [get]
func (r *DashboardRouter) algorithmsHandler(c echo.Context) error {
	v, err := r.svc.Optimizer.Algorithms(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// footprintHandler godoc
// @Summary Latest system footprint
// @Tags footprint
// @Produce json
// @Success 200 {object} dashboard.FootprintView
// @Router /api/v1/footprint [get]
func (r *DashboardRouter) footprintHandler(c echo.Context) error {
	v, err := r.svc.Footprint.Latest(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// refreshFootprintHandler godoc
// @Summary Poll the footprint now
// @Description Issues a new poll. If a newer poll supersedes it, the newer poll's result is returned.
// @Tags footprint
// @Produce json
// @Success 200 {object} dashboard.FootprintView
// @Router /api/v1/footprint/refresh [post]
func (r *DashboardRouter) refreshFootprintHandler(c echo.Context) error {
	v, err := r.svc.Footprint.Refresh(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

type EstimateRequest struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemoryGB   float64 `json:"memory_gb"`
}

// estimateHandler godoc
// @Summary Estimate the footprint of a hypothetical load
// @Tags footprint
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Load"
// @Success 200 {object} dashboard.View[domain.FootprintEstimate]
// @Failure 400 {object} map[string]string
// @Router /api/v1/footprint/estimate [post]
func (r *DashboardRouter) estimateHandler(c echo.Context) error {
	req := EstimateRequest{CPUPercent: domain.EstimateDefaultCPU, MemoryGB: domain.EstimateDefaultMemGB}
	if err := bind(c, &req); err != nil {
		return err
	}
	v, err := r.svc.Optimizer.Estimate(c.Request().Context(), req.CPUPercent, req.MemoryGB)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// analysisHandler godoc
// @Summary Benchmark a set of algorithms
// @Description Falls back to demo results when the backend is offline or the call fails
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body dashboard.AnalysisRequest true "Algorithms and dataset size"
// @Success 200 {object} dashboard.AnalysisView
// @Failure 400 {object} map[string]string
// @Router /api/v1/analysis [post]
func (r *DashboardRouter) analysisHandler(c echo.Context) error {
	var req dashboard.AnalysisRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	v, err := r.svc.Analyzer.Run(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// historyHandler godoc
// @Summary Past analyses, newest first
// @Tags analysis
// @Produce json
// @Param page query int false "Page" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} pagination.OffsetResult[domain.BenchmarkRun]
// @Router /api/v1/analysis/history [get]
func (r *DashboardRouter) historyHandler(c echo.Context) error {
	var page pagination.OffsetRequest
	if err := bind(c, &page); err != nil {
		return err
	}
	if err := page.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid page", err)
	}

	res, err := r.svc.Analyzer.History(c.Request().Context(), page)
	if err != nil {
		return historyError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// runHandler godoc
// @Summary One past analysis
// @Tags analysis
// @Produce json
// @Param id path string true "Run id"
// @Success 200 {object} dashboard.AnalysisView
// @Failure 404 {object} map[string]string
// @Router /api/v1/analysis/{id} [get]
func (r *DashboardRouter) runHandler(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return apperr.NewValidationWrap("invalid run id", err)
	}

	v, err := r.svc.Analyzer.Get(c.Request().Context(), id)
	if err != nil {
		return historyError(err)
	}
	return c.JSON(http.StatusOK, v)
}

func historyError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "run not found")
	case errors.Is(err, dashboard.ErrHistoryDisabled):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return err
}

type CompareRequest struct {
	Algorithm1  string `json:"algorithm_1"`
	Algorithm2  string `json:"algorithm_2"`
	DatasetSize int    `json:"dataset_size"`
}

// compareHandler godoc
// @Summary Compare two algorithms head to head
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body CompareRequest true "Algorithm ids"
// @Success 200 {object} dashboard.View[domain.Comparison]
// @Failure 400 {object} map[string]string
// @Router /api/v1/compare [post]
func (r *DashboardRouter) compareHandler(c echo.Context) error {
	var req CompareRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	v, err := r.svc.Optimizer.Compare(c.Request().Context(), req.Algorithm1, req.Algorithm2, req.DatasetSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

type OptimizeRequest struct {
	Strategy    domain.Strategy `json:"strategy"`
	DatasetSize int             `json:"dataset_size"`
}

// optimizeHandler godoc
// @Summary Recommend an algorithm for a strategy
// @Tags optimize
// @Accept json
// @Produce json
// @Param request body OptimizeRequest true "Strategy (carbon_first, speed_first, balanced)"
// @Success 200 {object} dashboard.View[domain.OptimizationRecommendation]
// @Failure 400 {object} map[string]string
// @Router /api/v1/optimize [post]
func (r *DashboardRouter) optimizeHandler(c echo.Context) error {
	var req OptimizeRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	v, err := r.svc.Optimizer.Optimize(c.Request().Context(), req.Strategy, req.DatasetSize)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// scenarioHandler godoc
// @Summary Recommend an algorithm for a workload
// @Tags optimize
// @Accept json
// @Produce json
// @Param request body domain.Scenario true "Workload traits"
// @Success 200 {object} dashboard.View[domain.ScenarioRecommendation]
// @Router /api/v1/optimize/scenario [post]
func (r *DashboardRouter) scenarioHandler(c echo.Context) error {
	var s domain.Scenario
	if err := bind(c, &s); err != nil {
		return err
	}
	v, err := r.svc.Optimizer.Scenario(c.Request().Context(), s)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// optimizerStatusHandler godoc
// @Summary Optimizer readiness
// @Tags optimize
// @Produce json
// @Success 200 {object} dashboard.View[domain.OptimizerStatus]
// @Router /api/v1/optimize/status [get]
func (r *DashboardRouter) optimizerStatusHandler(c echo.Context) error {
	v, err := r.svc.Optimizer.Status(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}
