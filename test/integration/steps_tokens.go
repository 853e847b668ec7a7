package integration

import (
	"fmt"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"

	"github.com/annie-elequin/pawgress/pkg/token"
)

// registerTokenSteps registers steps that send hand-crafted bearer tokens.
func (s *StepsContext) registerTokenSteps(sc *godog.ScenarioContext) {
	sc.Step(`^I send a GET request to "([^"]*)" with an expired token for "([^"]*)"$`, s.iSendWithAnExpiredToken)
	sc.Step(`^I send a GET request to "([^"]*)" with a token signed by another secret for "([^"]*)"$`, s.iSendWithAForeignToken)
	sc.Step(`^I send a GET request to "([^"]*)" with the bearer "([^"]*)"$`, s.iSendWithTheBearer)
}

func (s *StepsContext) iSendWithAnExpiredToken(path, email string) error {
	userID, err := s.userID(email)
	if err != nil {
		return err
	}
	past := func() time.Time { return time.Now().Add(-48 * time.Hour) }
	raw, err := token.New(s.tc.JWTSecret, token.WithClock(past)).Issue(userID, email)
	if err != nil {
		return err
	}
	return s.do("GET", s.expand(path), "", raw)
}

func (s *StepsContext) iSendWithAForeignToken(path, email string) error {
	userID, err := s.userID(email)
	if err != nil {
		return err
	}
	raw, err := token.New("some-other-secret").Issue(userID, email)
	if err != nil {
		return err
	}
	return s.do("GET", s.expand(path), "", raw)
}

func (s *StepsContext) iSendWithTheBearer(path, bearer string) error {
	return s.do("GET", s.expand(path), "", bearer)
}

// userID reads the subject of the user's current session token.
func (s *StepsContext) userID(email string) (string, error) {
	raw, ok := s.tokens[email]
	if !ok {
		return "", fmt.Errorf("no token for %s", email)
	}
	claims := &token.Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return "", err
	}
	return claims.UserID, nil
}
