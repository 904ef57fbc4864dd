package api

import "github.com/bloodlink-inc/bloodlink-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this phone number has already been registered",
		1101: "account not found",
		1102: store.ErrOTPInvalid.Error(),
		1103: "invalid phone number",

		1200: store.ErrRequestNotFound.Error(),
		1201: "required fields are missing",
		1202: "unknown blood group",
		1203: "unknown urgency level",
		1204: "unknown state",

		1300: store.ErrSlotUnavailable.Error(),
		1301: store.ErrNotTransitionable.Error(),
		1302: "the slot is not one of the bookable windows",
		1303: store.ErrAppointmentMissing.Error(),

		1400: store.ErrCampNotFound.Error(),
		1401: store.ErrCampNotEditable.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
	errorOTPInvalid      = errorJSON(1102)
	errorInvalidPhone    = errorJSON(1103)

	errorRequestNotFound   = errorJSON(1200)
	errorMissingFields     = errorJSON(1201)
	errorUnknownBloodGroup = errorJSON(1202)
	errorUnknownUrgency    = errorJSON(1203)
	errorUnknownState      = errorJSON(1204)

	errorSlotUnavailable    = errorJSON(1300)
	errorNotTransitionable  = errorJSON(1301)
	errorSlotNotBookable    = errorJSON(1302)
	errorAppointmentMissing = errorJSON(1303)

	errorCampNotFound    = errorJSON(1400)
	errorCampNotEditable = errorJSON(1401)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
