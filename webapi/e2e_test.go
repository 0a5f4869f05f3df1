//go:build integration

package webapi_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fortizbank/fortiz/webapi"
	"github.com/fortizbank/fortiz/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TransferE2ETestSuite struct {
	testutils.E2ETestSuite
}

func TestTransferE2ETestSuite(t *testing.T) {
	s := new(TransferE2ETestSuite)
	s.Build = webapi.SetupApp
	suite.Run(t, s)
}

func (s *TransferE2ETestSuite) balances(token string) map[string]float64 {
	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/summary", "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	body := testutils.Decode(s.T(), resp)
	out := map[string]float64{}
	for _, raw := range body["accounts"].([]any) {
		a := raw.(map[string]any)
		out[a["id"].(string)] = a["balance"].(float64)
	}
	return out
}

func (s *TransferE2ETestSuite) TestInternalTransfer() {
	userID, token := s.RegisterAndLogin()
	checking := s.OpenAccount(userID, "checking", 100)
	savings := s.OpenAccount(userID, "savings", 0)

	body := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":40}`, checking, savings)
	resp := s.MakeRequest(fiber.MethodPost, "/transfers", body, token)
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	b := s.balances(token)
	s.Equal(60.0, b[checking.String()])
	s.Equal(40.0, b[savings.String()])

	resp = s.MakeRequest(fiber.MethodGet, "/accounts/"+checking.String()+"/transactions", "", token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *TransferE2ETestSuite) TestForeignAccountsAreInvalid() {
	_, token := s.RegisterAndLogin()
	otherID, _ := s.RegisterAndLogin()
	theirs := s.OpenAccount(otherID, "checking", 100)
	alsoTheirs := s.OpenAccount(otherID, "savings", 0)

	body := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":1}`, theirs, alsoTheirs)
	resp := s.MakeRequest(fiber.MethodPost, "/transfers", body, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
	s.Equal("Invalid accounts", testutils.Decode(s.T(), resp)["error"])
}

// Concurrent transfers in the default mode race on read-then-write, so the
// ledger may disagree with the balances. Only totals that survive any
// interleaving are asserted.
func (s *TransferE2ETestSuite) TestConcurrentTransfersStayNonNegative() {
	userID, token := s.RegisterAndLogin()
	checking := s.OpenAccount(userID, "checking", 100)
	savings := s.OpenAccount(userID, "savings", 0)

	var wg sync.WaitGroup
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			body := fmt.Sprintf(`{"from_account_id":%q,"to_account_id":%q,"amount":60}`, checking, savings)
			resp := s.MakeRequest(fiber.MethodPost, "/transfers", body, token)
			_ = resp.Body.Close()
		}()
	}
	wg.Wait()

	b := s.balances(token)
	s.GreaterOrEqual(b[checking.String()], 0.0)
}

func (s *TransferE2ETestSuite) TestInitiateAndCancel() {
	userID, token := s.RegisterAndLogin()
	checking := s.OpenAccount(userID, "checking", 5000)

	body := fmt.Sprintf(`{"from_account_id":%q,"amount":1500,"recipient_name":"Jo Doe"}`, checking)
	resp := s.MakeRequest(fiber.MethodPost, "/transfers-v2", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	transfer := testutils.Decode(s.T(), resp)["transfer"].(map[string]any)
	s.Equal("initiated", transfer["status"])
	s.Equal(true, transfer["requires_mfa"])
	id := transfer["id"].(string)

	resp = s.MakeRequest(fiber.MethodPatch, "/transfers/"+id, `{"action":"verify_mfa","mfa_code":"123456"}`, token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.MakeRequest(fiber.MethodPatch, "/transfers/"+id, `{"action":"cancel"}`, token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("Transfer cancelled successfully", testutils.Decode(s.T(), resp)["message"])

	resp = s.MakeRequest(fiber.MethodGet, "/transfers/"+id, "", token)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	detail := testutils.Decode(s.T(), resp)
	s.EqualValues(0, detail["progress"])
	s.Len(detail["events"], 3)
	s.Equal(5000.0, detail["from_account"].(map[string]any)["available_balance"])

	resp = s.MakeRequest(fiber.MethodPatch, "/transfers/"+id, `{"action":"cancel"}`, token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *TransferE2ETestSuite) TestOtherUsersTransferIsNotFound() {
	userID, token := s.RegisterAndLogin()
	_, otherToken := s.RegisterAndLogin()
	checking := s.OpenAccount(userID, "checking", 100)

	body := fmt.Sprintf(`{"from_account_id":%q,"amount":10,"recipient_name":"Jo Doe"}`, checking)
	resp := s.MakeRequest(fiber.MethodPost, "/transfers-v2", body, token)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	id := testutils.Decode(s.T(), resp)["transfer"].(map[string]any)["id"].(string)

	resp = s.MakeRequest(fiber.MethodGet, "/transfers/"+id, "", otherToken)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
	s.Equal("Transfer not found", testutils.Decode(s.T(), resp)["error"])

	resp = s.MakeRequest(fiber.MethodGet, "/transfers/"+uuid.NewString(), "", token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}
