package v1

import (
	"encoding/json"
	"errors"

	"portfolio-contact/internal/delivery/http/response"
	"portfolio-contact/internal/domain"
	"portfolio-contact/pkg/apperror"

	"github.com/gin-gonic/gin"
)

var errNullSubmission = errors.New("request body must be a JSON object, got null")

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required).
// The relay group keeps the path the static site posts to.
func NewContactHandler(public, relay *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
	relay.POST("/contact", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Relay a contact form message to the site owner by email. Public endpoint; duplicate submissions send duplicate emails.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.SubmissionPayload  true  "Contact Form Data"
// @Success      200      {object}  response.MessageBody
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /.netlify/functions/contact [post]
// @Router       /v1/contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	req, err := bindSubmission(c)
	if err != nil {
		// Malformed bodies fail like any other relay error
		c.Error(apperror.Internal(err))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), req); err != nil {
		if errors.Is(err, domain.ErrInvalidSubmission) {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		c.Error(apperror.Internal(err))
		return
	}

	response.Relay(c, domain.RelaySuccess())
}

// bindSubmission decodes into a pointer so a literal null is told apart from
// an empty object.
func bindSubmission(c *gin.Context) (*domain.SubmissionPayload, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, err
	}

	var req *domain.SubmissionPayload
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errNullSubmission
	}
	return req, nil
}
