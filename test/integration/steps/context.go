// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/project-ledger/backend/config"
	"github.com/project-ledger/backend/internal/infra/dependency"
	"github.com/project-ledger/backend/internal/integration/persistence/model"
	"github.com/project-ledger/backend/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	engine       *gin.Engine
	response     *http.Response
	responseBody []byte

	// IDs captured from earlier steps, substituted into
	// placeholders like {project_id} in endpoints and bodies.
	vars map[string]string

	db  *mock.Db
	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		db := mock.NewDb([]any{
			&model.ProjectModel{},
			&model.CategoryModel{},
			&model.TransactionModel{},
			&model.AuditLogModel{},
		})
		if err := db.Reset(); err != nil {
			return ctx, fmt.Errorf("failed to reset database: %w", err)
		}

		cfg := config.Load()
		healthChecker := func() bool {
			sqlDB, err := db.DbConn.DB()
			return err == nil && sqlDB.Ping() == nil
		}
		injector := dependency.NewInjector(cfg, db.DbConn, healthChecker)

		tc := &TestContext{
			vars: make(map[string]string),
			db:   db,
			cfg:  cfg,
		}
		tc.engine = injector.Router.Setup(cfg.Server.Environment)
		tc.server = httptest.NewServer(tc.engine)

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerFixtureSteps(ctx)
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// registerFixtureSteps registers steps that seed data through the API.
func registerFixtureSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a project named "([^"]*)" exists$`, aProjectNamedExists)
	ctx.Step(`^a category named "([^"]*)" of type "([^"]*)" exists in the project$`, aCategoryExistsInTheProject)
	ctx.Step(`^a transaction of type "([^"]*)" with amount ([0-9.]+) and description "([^"]*)" exists in the project$`, aTransactionExistsInTheProject)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response should have (\d+) items$`, theResponseShouldHaveItems)
	ctx.Step(`^the response should have at least (\d+) items$`, theResponseShouldHaveAtLeastItems)
	ctx.Step(`^the response item (\d+) field "([^"]*)" should be "([^"]*)"$`, theResponseItemFieldShouldBe)
}

// substitute replaces {name} placeholders with captured values.
func (tc *TestContext) substitute(s string) string {
	for key, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+key+"}", value)
	}
	return s
}

// send performs an HTTP request against the scenario's server and
// stores the response.
func (tc *TestContext) send(method, endpoint, body string) error {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(tc.substitute(body))
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.substitute(endpoint), reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// responseField resolves a dotted path like "project.name" in the
// response object and renders the value with %v.
func (tc *TestContext) responseField(path string) (string, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return "", fmt.Errorf("failed to parse response JSON: %w", err)
	}
	return lookupField(data, path)
}

func lookupField(data map[string]interface{}, path string) (string, error) {
	parts := strings.Split(path, ".")
	var current interface{} = data
	for _, part := range parts {
		obj, ok := current.(map[string]interface{})
		if !ok {
			return "", fmt.Errorf("field %q is not an object", part)
		}
		current, ok = obj[part]
		if !ok {
			return "", fmt.Errorf("field %q not found", part)
		}
	}
	return fmt.Sprintf("%v", current), nil
}

// responseItems parses the response body as a JSON array of objects.
func (tc *TestContext) responseItems() ([]map[string]interface{}, error) {
	var items []map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &items); err != nil {
		return nil, fmt.Errorf("failed to parse response as list: %w", err)
	}
	return items, nil
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, "")
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	return tc.send(method, endpoint, body.Content)
}

func aProjectNamedExists(ctx context.Context, name string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{"name": name})
	if err := tc.send(http.MethodPost, "/api/projects", string(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create project: status %d, body %s", tc.response.StatusCode, tc.responseBody)
	}

	id, err := tc.responseField("project.id")
	if err != nil {
		return err
	}
	tc.vars["project_id"] = id
	return nil
}

func aCategoryExistsInTheProject(ctx context.Context, name, categoryType string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	payload, _ := json.Marshal(map[string]string{"name": name, "type": categoryType})
	if err := tc.send(http.MethodPost, "/api/projects/{project_id}/categories", string(payload)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create category: status %d, body %s", tc.response.StatusCode, tc.responseBody)
	}

	id, err := tc.responseField("id")
	if err != nil {
		return err
	}
	tc.vars["category_id"] = id
	return nil
}

func aTransactionExistsInTheProject(ctx context.Context, transactionType, amount, description string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	body := fmt.Sprintf(`{"type": %q, "category_id": {category_id}, "amount": %s, "description": %q}`,
		transactionType, amount, description)
	if err := tc.send(http.MethodPost, "/api/projects/{project_id}/transactions", body); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to create transaction: status %d, body %s", tc.response.StatusCode, tc.responseBody)
	}

	id, err := tc.responseField("id")
	if err != nil {
		return err
	}
	tc.vars["transaction_id"] = id
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain %q. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	actual, err := tc.responseField(field)
	if err != nil {
		return fmt.Errorf("%w. Body: %s", err, string(tc.responseBody))
	}
	if actual != tc.substitute(expected) {
		return fmt.Errorf("field %q expected %q, got %q", field, tc.substitute(expected), actual)
	}
	return nil
}

func theResponseShouldHaveItems(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	items, err := tc.responseItems()
	if err != nil {
		return err
	}
	if len(items) != expected {
		return fmt.Errorf("expected %d items, got %d. Body: %s", expected, len(items), string(tc.responseBody))
	}
	return nil
}

func theResponseShouldHaveAtLeastItems(ctx context.Context, expected int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	items, err := tc.responseItems()
	if err != nil {
		return err
	}
	if len(items) < expected {
		return fmt.Errorf("expected at least %d items, got %d. Body: %s", expected, len(items), string(tc.responseBody))
	}
	return nil
}

func theResponseItemFieldShouldBe(ctx context.Context, index int, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	items, err := tc.responseItems()
	if err != nil {
		return err
	}
	if index >= len(items) {
		return fmt.Errorf("item %d out of range, response has %d items", index, len(items))
	}
	actual, err := lookupField(items[index], field)
	if err != nil {
		return fmt.Errorf("item %d: %w", index, err)
	}
	if actual != tc.substitute(expected) {
		return fmt.Errorf("item %d field %q expected %q, got %q", index, field, tc.substitute(expected), actual)
	}
	return nil
}
