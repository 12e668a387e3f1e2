//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/dogecoinfoundation/doge-prize/internal/domain/prize"
	"github.com/dogecoinfoundation/doge-prize/internal/handler/api"
	resdto "github.com/dogecoinfoundation/doge-prize/internal/handler/dto/response"
	"github.com/dogecoinfoundation/doge-prize/internal/usecase/commands"
	"github.com/dogecoinfoundation/doge-prize/tests/common/builder"
	"github.com/dogecoinfoundation/doge-prize/tests/common/httptest"
	commandsmock "github.com/dogecoinfoundation/doge-prize/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TransferHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTransferCommands
	handler      *api.TransferHandler
}

func (s *TransferHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTransferCommands(s.mockCtrl)
	s.handler = api.NewTransferHandler(s.mockCommands)

	s.router.POST("/api/transfer", s.handler.Transfer)
}

func (s *TransferHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTransferHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransferHandlerTestSuite))
}

func (s *TransferHandlerTestSuite) TestTransfer() {
	url := "/api/transfer"
	body := map[string]any{"code": "DOGE-2024-WOW", "walletAddress": "DAddr123"}

	s.Run("success: returns the transaction hash", func() {
		view := builder.NewPrizeBuilder().WithStatus(prize.StatusTransferred).BuildView()
		s.mockCommands.EXPECT().Transfer(gomock.Any(), "DOGE-2024-WOW", "DAddr123").
			Return(&commands.TransferResult{
				Prize:         view,
				TransactionID: "deadbeef",
				Message:       "Transaction submitted successfully",
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.TransferResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Success)
		s.Equal("deadbeef", response.TransactionHash)
		s.Require().NotNil(response.Prize)
		s.Equal("Transferred", response.Prize.Status)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "missing arguments",
				commandsError:  commands.ErrWalletAddressRequired,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Redemption code and wallet address are required",
			},
			{
				name:           "unknown code",
				commandsError:  commands.ErrPrizeNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Invalid redemption code",
			},
			{
				name:           "already transferred",
				commandsError:  commands.ErrAlreadyTransferred,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Prize has already been transferred",
			},
			{
				name:           "not yet redeemed",
				commandsError:  commands.ErrNotRedeemed,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Prize must be redeemed before it can be transferred",
			},
			{
				name:           "broadcast failed",
				commandsError:  commands.ErrSendFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to send transaction",
			},
			{
				name:           "sent but not recorded",
				commandsError:  commands.ErrPostSendUpdateFailed,
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Transaction sent but failed to update prize status",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transfer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
