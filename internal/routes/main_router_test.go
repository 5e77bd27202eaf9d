package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"sustainability-dashboard/internal/dto"
	"sustainability-dashboard/internal/entities"
	"sustainability-dashboard/internal/repositories"
	"sustainability-dashboard/internal/services"
	"sustainability-dashboard/internal/views"
	"sustainability-dashboard/pkg/config"
	"sustainability-dashboard/pkg/customvalidator"
	"sustainability-dashboard/pkg/metrics"
	"sustainability-dashboard/pkg/utils"
	"sustainability-dashboard/pkg/websocket"
	"sustainability-dashboard/seeders"
)

var suiteNow = time.Date(2024, time.November, 5, 15, 4, 5, 0, time.UTC)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

// DashboardTestSuite гоняет полные HTTP-сценарии против echo в памяти.
type DashboardTestSuite struct {
	suite.Suite
	Echo   *echo.Echo
	Cookie *http.Cookie
}

func (suite *DashboardTestSuite) SetupTest() {
	e := echo.New()

	v := validator.New()
	suite.Require().NoError(customvalidator.RegisterCustomValidations(v))
	e.Validator = utils.NewValidator(v)

	ds, err := seeders.LoadDataset()
	suite.Require().NoError(err)

	renderer, err := views.NewRenderer()
	suite.Require().NoError(err)

	reg := prometheus.NewRegistry()
	suite.Require().NoError(metrics.Register(reg))

	nopLogger := zap.NewNop()
	clock := utils.ClockFunc(func() time.Time { return suiteNow })
	svc := services.NewDashboardService(
		repositories.NewInMemorySessionRepository(clock),
		repositories.NewDatasetRepository(ds),
		nil,
		services.ReducerDeps{Clock: clock},
		nopLogger,
	)

	cfg := &config.Config{
		Session:   config.SessionConfig{CookieName: "dashboard_session", IdleTTL: time.Hour},
		Dashboard: config.DashboardConfig{FacilityName: "Textile Manufacturing"},
	}

	InitRouter(e, Dependencies{
		Config:    cfg,
		Dashboard: svc,
		Renderer:  renderer,
		Hub:       websocket.NewHub(nopLogger),
		Gatherer:  reg,
		Logger:    nopLogger,
	})

	suite.Echo = e
	suite.Cookie = nil
}

func (suite *DashboardTestSuite) do(method, target string, body string, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if suite.Cookie != nil {
		req.AddCookie(suite.Cookie)
	}

	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "dashboard_session" {
			suite.Cookie = c
		}
	}
	return rec
}

func (suite *DashboardTestSuite) form(target string, values url.Values) *httptest.ResponseRecorder {
	return suite.do(http.MethodPost, target, values.Encode(), echo.MIMEApplicationForm)
}

func (suite *DashboardTestSuite) event(payload map[string]string) *httptest.ResponseRecorder {
	raw, err := json.Marshal(payload)
	suite.Require().NoError(err)
	return suite.do(http.MethodPost, "/api/events", string(raw), echo.MIMEApplicationJSON)
}

func (suite *DashboardTestSuite) decode(rec *httptest.ResponseRecorder, body interface{}) envelope {
	var env envelope
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	if body != nil {
		suite.Require().NoError(json.Unmarshal(env.Body, body))
	}
	return env
}

func (suite *DashboardTestSuite) state() entities.DashboardState {
	rec := suite.do(http.MethodGet, "/api/state", "", "")
	suite.Require().Equal(http.StatusOK, rec.Code)
	var st entities.DashboardState
	suite.decode(rec, &st)
	return st
}

func (suite *DashboardTestSuite) TestIndexIssuesSessionAndRenders() {
	rec := suite.do(http.MethodGet, "/", "", "")

	suite.Equal(http.StatusOK, rec.Code)
	suite.Require().NotNil(suite.Cookie)
	suite.Contains(rec.Body.String(), "Sustainability Dashboard")
	suite.Contains(rec.Body.String(), "Last updated: 3:04:05 PM")
	suite.Contains(rec.Body.String(), "Average Performance: 89% of targets")
	suite.Equal("no-store", rec.Header().Get(echo.HeaderCacheControl))
}

func (suite *DashboardTestSuite) TestViewNavigationThroughForms() {
	suite.do(http.MethodGet, "/", "", "")

	rec := suite.form("/actions/view", url.Values{"view": {"water"}})
	suite.Equal(http.StatusSeeOther, rec.Code)
	suite.Equal("/", rec.Header().Get(echo.HeaderLocation))

	st := suite.state()
	suite.Equal(entities.ViewWater, st.View)
	suite.EqualValues(1, st.Version)

	page := suite.do(http.MethodGet, "/", "", "")
	suite.Contains(page.Body.String(), "Water Usage Insights")

	rec = suite.form("/actions/back", url.Values{})
	suite.Equal(http.StatusSeeOther, rec.Code)
	suite.Equal(entities.ViewOverview, suite.state().View)

	// Повторный "назад" с обзора ничего не меняет.
	rec = suite.form("/actions/back", url.Values{})
	suite.Equal(http.StatusSeeOther, rec.Code)
	st = suite.state()
	suite.Equal(entities.ViewOverview, st.View)
	suite.EqualValues(2, st.Version)
}

func (suite *DashboardTestSuite) TestSelectUnknownViewIsBadRequest() {
	rec := suite.form("/actions/view", url.Values{"view": {"details"}})
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.False(suite.decode(rec, nil).Status)
}

func (suite *DashboardTestSuite) TestApiTransitionConflict() {
	suite.Equal(http.StatusOK, suite.event(map[string]string{"type": "select_view", "view": "water"}).Code)

	rec := suite.event(map[string]string{"type": "select_view", "view": "energy"})
	suite.Equal(http.StatusConflict, rec.Code)

	st := suite.state()
	suite.Equal(entities.ViewWater, st.View)
	suite.EqualValues(1, st.Version)
}

func (suite *DashboardTestSuite) TestNotesFlow() {
	rec := suite.event(map[string]string{"type": "add_note", "metric": "Energy Consumption", "text": "   "})
	suite.Equal(http.StatusUnprocessableEntity, rec.Code)

	rec = suite.event(map[string]string{"type": "add_note", "metric": "energy", "text": "hi"})
	suite.Equal(http.StatusBadRequest, rec.Code)

	suite.Equal(http.StatusOK, suite.event(map[string]string{"type": "set_note_draft", "text": "Check boiler"}).Code)
	suite.Equal("Check boiler", suite.state().NoteDraft)

	rec = suite.form("/actions/notes", url.Values{"metric": {"Energy Consumption"}, "text": {"Check boiler"}})
	suite.Equal(http.StatusSeeOther, rec.Code)
	suite.Empty(suite.state().NoteDraft)

	var notes []entities.Note
	rec = suite.do(http.MethodGet, "/api/notes?metric="+url.QueryEscape("Energy Consumption"), "", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.decode(rec, &notes)
	suite.Require().Len(notes, 1)
	suite.Equal("Check boiler", notes[0].Text)
	suite.Equal("11/5/2024, 3:04:05 PM", notes[0].Timestamp)
	suite.True(strings.HasPrefix(notes[0].ID, "Energy Consumption_1730819045000_"))

	rec = suite.do(http.MethodGet, "/api/notes?metric="+url.QueryEscape("Water Usage"), "", "")
	suite.Equal(http.StatusOK, rec.Code)
	notes = nil
	suite.decode(rec, &notes)
	suite.Empty(notes)

	rec = suite.do(http.MethodGet, "/api/notes?metric=bogus", "", "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *DashboardTestSuite) TestNoteDraftForm() {
	rec := suite.form("/actions/notes/draft", url.Values{"metric": {"Water Usage"}, "text": {"Leak near dyer 3"}})
	suite.Equal(http.StatusSeeOther, rec.Code)
	suite.Equal("/", rec.Header().Get(echo.HeaderLocation))

	st := suite.state()
	suite.Equal("Leak near dyer 3", st.NoteDraft)
	suite.Empty(st.Notes)
	suite.EqualValues(1, st.Version)
}

func (suite *DashboardTestSuite) TestBlankNoteFormIsNoOp() {
	rec := suite.form("/actions/notes", url.Values{"metric": {"Water Usage"}, "text": {"  "}})
	suite.Equal(http.StatusSeeOther, rec.Code)

	st := suite.state()
	suite.Empty(st.Notes)
	suite.EqualValues(0, st.Version)
}

func (suite *DashboardTestSuite) TestFiltersDoNotChangeKPIs() {
	before := suite.do(http.MethodGet, "/api/kpis", "", "")
	suite.Equal(http.StatusOK, before.Code)

	rec := suite.form("/actions/filters", url.Values{
		"timeRange":  {"year"},
		"unit":       {"all"},
		"department": {"dyeing"},
	})
	suite.Equal(http.StatusSeeOther, rec.Code)

	st := suite.state()
	suite.Equal("year", st.Filters.TimeRange)
	suite.Equal("dyeing", st.Filters.Department)
	suite.Equal("all", st.Filters.Unit)
	suite.EqualValues(2, st.Version)

	after := suite.do(http.MethodGet, "/api/kpis", "", "")
	suite.Equal(before.Body.String(), after.Body.String())

	rec = suite.form("/actions/filters", url.Values{"shift": {"evening"}})
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.Equal("all", suite.state().Filters.Shift)
}

func (suite *DashboardTestSuite) TestRejectedFilterFormChangesNothing() {
	rec := suite.form("/actions/filters", url.Values{
		"unit":  {"unit-b"},
		"shift": {"evening"},
	})
	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.False(suite.decode(rec, nil).Status)

	st := suite.state()
	suite.Equal(entities.DefaultFilters(), st.Filters)
	suite.EqualValues(0, st.Version)
}

func (suite *DashboardTestSuite) TestKPIs() {
	var body dto.KPIListDTO
	rec := suite.do(http.MethodGet, "/api/kpis", "", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.decode(rec, &body)

	suite.Require().Len(body.KPIs, 4)
	water := body.KPIs[entities.MetricWater]
	suite.Equal("water", water.Metric)
	suite.Equal("red", water.StatusColor)
	suite.Equal(100.0, water.Progress.Width)
	suite.Equal("125%", water.Progress.Text)
	suite.Equal("▲", water.Trend.Symbol)
	suite.Require().NotNil(body.AveragePerformance)
	suite.InDelta(89.25, *body.AveragePerformance, 1e-9)
}

func (suite *DashboardTestSuite) TestAlertsAndToggle() {
	var body dto.AlertListDTO
	rec := suite.do(http.MethodGet, "/api/alerts", "", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.decode(rec, &body)
	suite.Len(body.Alerts, 3)
	suite.Equal(2, body.BadgeCount)

	suite.Equal(http.StatusSeeOther, suite.form("/actions/alerts/toggle", url.Values{}).Code)
	suite.True(suite.state().ShowAlerts)

	page := suite.do(http.MethodGet, "/", "", "")
	suite.Contains(page.Body.String(), `id="alert-panel"`)

	suite.Equal(http.StatusSeeOther, suite.form("/actions/alerts/toggle", url.Values{}).Code)
	suite.False(suite.state().ShowAlerts)
}

func (suite *DashboardTestSuite) TestSessionsAreIsolated() {
	suite.event(map[string]string{"type": "select_view", "view": "overall"})
	first := suite.Cookie

	suite.Cookie = nil
	suite.Equal(entities.ViewOverview, suite.state().View)

	suite.Cookie = first
	suite.Equal(entities.ViewOverall, suite.state().View)
}

func (suite *DashboardTestSuite) TestUnknownEventType() {
	rec := suite.event(map[string]string{"type": "dismiss_alert"})
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *DashboardTestSuite) TestExportStub() {
	for _, format := range []string{"pdf", "csv", "excel", "PDF"} {
		rec := suite.do(http.MethodGet, "/export/"+format, "", "")
		suite.Equal(http.StatusNotImplemented, rec.Code, format)
	}

	rec := suite.do(http.MethodGet, "/export/docx", "", "")
	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *DashboardTestSuite) TestSystemEndpoints() {
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/healthz", "", "").Code)

	suite.event(map[string]string{"type": "toggle_alerts"})
	rec := suite.do(http.MethodGet, "/metrics", "", "")
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "sustainability_dashboard_events_total")
}

func TestDashboardTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardTestSuite))
}
