package uerror

import "fmt"

const (
	UMBRA_UNEXPECTED       = "UMBRU"
	UMBRA_UNRECOGNIZED_URL = "UMBRL"
	UMBRA_PARSE_ERROR      = "UMBRP"
	UMBRA_JUDGEMENT_ERROR  = "UMBRJ"
	UMBRA_REWRITE_ERROR    = "UMBRW"
	UMBRA_EXECUTION_ERROR  = "UMBRX"
	UMBRA_CONFIG_ERROR     = "UMBRC"
)

var existingErrorCodeMap = map[string]string{
	UMBRA_UNRECOGNIZED_URL: "UnrecognizedConnectionURL",
	UMBRA_PARSE_ERROR:      "StatementParseError",
	UMBRA_JUDGEMENT_ERROR:  "JudgementError",
	UMBRA_REWRITE_ERROR:    "RewriteError",
	UMBRA_EXECUTION_ERROR:  "ExecutionError",
	UMBRA_CONFIG_ERROR:     "ConfigError",
}

func GetMessageByCode(errorCode string) string {
	rep, ok := existingErrorCodeMap[errorCode]
	if ok {
		return rep
	}
	return "Unexpected error"
}

var _ error = &UmbraError{}

type UmbraError struct {
	Err error

	ErrorCode string
}

func New(errorCode string, errorMsg string) *UmbraError {
	return &UmbraError{
		Err:       fmt.Errorf("%s", errorMsg),
		ErrorCode: errorCode,
	}
}

func Newf(errorCode string, format string, args ...any) *UmbraError {
	return &UmbraError{
		Err:       fmt.Errorf(format, args...),
		ErrorCode: errorCode,
	}
}

// Wrap keeps the underlying error reachable via errors.Unwrap while
// attaching an umbra error code to it.
func Wrap(errorCode string, err error) *UmbraError {
	return &UmbraError{
		Err:       err,
		ErrorCode: errorCode,
	}
}

func (er *UmbraError) Error() string {
	return fmt.Sprintf("Code: %s. Name: %s. Description: %s.",
		er.ErrorCode, GetMessageByCode(er.ErrorCode), er.Err)
}

func (er *UmbraError) Unwrap() error {
	return er.Err
}

// CodeOf reports the umbra error code of err, or UMBRA_UNEXPECTED if err
// carries no code.
func CodeOf(err error) string {
	if ue, ok := err.(*UmbraError); ok {
		return ue.ErrorCode
	}
	return UMBRA_UNEXPECTED
}
