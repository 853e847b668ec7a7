package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/cucumber/godog"
)

// placeholder matches {name} references to ids remembered earlier in a
// scenario.
var placeholder = regexp.MustCompile(`\{([a-zA-Z0-9_]+)\}`)

// StepsContext holds state shared between step definitions
type StepsContext struct {
	tc           *TestContext
	response     *http.Response
	responseBody []byte
	// tokens maps an email to the bearer token from its last login.
	tokens map[string]string
	// current is the email whose token is sent with requests.
	current string
	// ids holds values captured with "I remember ..." steps.
	ids map[string]string
}

// NewStepsContext creates a new steps context
func NewStepsContext(tc *TestContext) *StepsContext {
	return &StepsContext{
		tc:     tc,
		tokens: make(map[string]string),
		ids:    make(map[string]string),
	}
}

// RegisterSteps registers all step definitions
func (s *StepsContext) RegisterSteps(sc *godog.ScenarioContext) {
	// Background steps
	sc.Step(`^a Pawgress server is running$`, s.aPawgressServerIsRunning)
	sc.Step(`^a user "([^"]*)" with password "([^"]*)" has signed up$`, s.aUserHasSignedUp)
	sc.Step(`^I am logged in as "([^"]*)"$`, s.iAmLoggedInAs)
	sc.Step(`^I am not logged in$`, s.iAmNotLoggedIn)

	// Request steps
	sc.Step(`^I send a (GET|DELETE|PATCH) request to "([^"]*)"$`, s.iSendARequestTo)
	sc.Step(`^I send a (POST|PUT|PATCH) request to "([^"]*)" with body:$`, s.iSendARequestWithBody)
	sc.Step(`^I remember the response field "([^"]*)" as "([^"]*)"$`, s.iRememberTheResponseField)

	// Response steps
	sc.Step(`^the response status should be (\d+)$`, s.theResponseStatusShouldBe)
	sc.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, s.theResponseFieldShouldBe)
	sc.Step(`^the response field "([^"]*)" should be (true|false)$`, s.theResponseFieldShouldBeBool)
	sc.Step(`^the response field "([^"]*)" should contain "([^"]*)"$`, s.theResponseFieldShouldContain)
	sc.Step(`^the response error should be "([^"]*)"$`, s.theResponseErrorShouldBe)
	sc.Step(`^the response should be a list of (\d+) items?$`, s.theResponseShouldBeAListOf)
	sc.Step(`^I should receive a valid JWT token$`, s.iShouldReceiveAValidJWTToken)

	s.registerTokenSteps(sc)
}

// Background steps

func (s *StepsContext) aPawgressServerIsRunning() error {
	// Server is already running via TestContext
	return nil
}

func (s *StepsContext) aUserHasSignedUp(email, password string) error {
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	if err := s.do("POST", "/api/auth/signup", body, ""); err != nil {
		return err
	}
	if s.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("signup of %s failed: %d %s", email, s.response.StatusCode, s.responseBody)
	}
	return s.captureToken(email)
}

func (s *StepsContext) iAmLoggedInAs(email string) error {
	if _, ok := s.tokens[email]; !ok {
		return fmt.Errorf("no token for %s; sign the user up first", email)
	}
	s.current = email
	return nil
}

func (s *StepsContext) iAmNotLoggedIn() error {
	s.current = ""
	return nil
}

// Request steps

func (s *StepsContext) iSendARequestTo(method, path string) error {
	return s.do(method, s.expand(path), "", s.tokens[s.current])
}

func (s *StepsContext) iSendARequestWithBody(method, path string, body *godog.DocString) error {
	if err := s.do(method, s.expand(path), s.expand(body.Content), s.tokens[s.current]); err != nil {
		return err
	}
	if path == "/api/auth/login" || path == "/api/auth/signup" {
		var creds struct {
			Email string `json:"email"`
		}
		if err := json.Unmarshal([]byte(body.Content), &creds); err == nil && s.response.StatusCode < 300 {
			return s.captureToken(strings.ToLower(strings.TrimSpace(creds.Email)))
		}
	}
	return nil
}

func (s *StepsContext) iRememberTheResponseField(field, name string) error {
	value, err := s.field(field)
	if err != nil {
		return err
	}
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("field %q is %T, not a string", field, value)
	}
	s.ids[name] = str
	return nil
}

// Response steps

func (s *StepsContext) theResponseStatusShouldBe(expected int) error {
	if s.response == nil {
		return fmt.Errorf("no response received")
	}
	if s.response.StatusCode != expected {
		return fmt.Errorf("expected status %d, got %d: %s", expected, s.response.StatusCode, string(s.responseBody))
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBe(field, expected string) error {
	value, err := s.field(field)
	if err != nil {
		return err
	}
	expected = s.expand(expected)
	if fmt.Sprint(value) != expected {
		return fmt.Errorf("expected %s to be %q, got %v", field, expected, value)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldBeBool(field, expected string) error {
	value, err := s.field(field)
	if err != nil {
		return err
	}
	b, ok := value.(bool)
	if !ok || fmt.Sprint(b) != expected {
		return fmt.Errorf("expected %s to be %s, got %v", field, expected, value)
	}
	return nil
}

func (s *StepsContext) theResponseFieldShouldContain(field, expected string) error {
	value, err := s.field(field)
	if err != nil {
		return err
	}
	if !strings.Contains(fmt.Sprint(value), expected) {
		return fmt.Errorf("expected %s to contain %q, got %v", field, expected, value)
	}
	return nil
}

func (s *StepsContext) theResponseErrorShouldBe(expected string) error {
	return s.theResponseFieldShouldBe("error", expected)
}

func (s *StepsContext) theResponseShouldBeAListOf(n int) error {
	var items []json.RawMessage
	if err := json.Unmarshal(s.responseBody, &items); err != nil {
		return fmt.Errorf("response is not a JSON array: %s", s.responseBody)
	}
	if len(items) != n {
		return fmt.Errorf("expected %d items, got %d", n, len(items))
	}
	return nil
}

func (s *StepsContext) iShouldReceiveAValidJWTToken() error {
	value, err := s.field("token")
	if err != nil {
		return err
	}
	raw, _ := value.(string)
	if strings.Count(raw, ".") != 2 {
		return fmt.Errorf("token is not a compact JWT: %q", raw)
	}
	return nil
}

// Helpers

func (s *StepsContext) do(method, path, body, bearer string) error {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, s.tc.ServerURL+path, reader)
	if err != nil {
		return err
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	s.response, err = s.tc.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	s.responseBody, err = io.ReadAll(s.response.Body)
	_ = s.response.Body.Close()
	return err
}

func (s *StepsContext) captureToken(email string) error {
	value, err := s.field("token")
	if err != nil {
		return err
	}
	raw, ok := value.(string)
	if !ok || raw == "" {
		return fmt.Errorf("no token in response: %s", s.responseBody)
	}
	s.tokens[email] = raw
	s.current = email
	return nil
}

// field resolves a dotted path such as "user.email" in the JSON response.
func (s *StepsContext) field(path string) (interface{}, error) {
	var doc interface{}
	if err := json.Unmarshal(s.responseBody, &doc); err != nil {
		return nil, fmt.Errorf("response is not JSON: %s", s.responseBody)
	}
	for _, key := range strings.Split(path, ".") {
		obj, ok := doc.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("cannot resolve %q in %s", path, s.responseBody)
		}
		doc, ok = obj[key]
		if !ok {
			return nil, fmt.Errorf("field %q missing from %s", path, s.responseBody)
		}
	}
	return doc, nil
}

func (s *StepsContext) expand(text string) string {
	return placeholder.ReplaceAllStringFunc(text, func(m string) string {
		if v, ok := s.ids[m[1:len(m)-1]]; ok {
			return v
		}
		return m
	})
}
