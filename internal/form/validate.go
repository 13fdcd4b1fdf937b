package form

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/deppfellow/form-demo/internal/response"
)

// Validate runs the ordered rules of req's form and returns the first
// failure, or a valid outcome. The override code is not consulted here;
// see Evaluate.
func Validate(req Request) response.Outcome {
	switch r := req.(type) {
	case *ButtonsRequest:
		return validateButtons(r)
	case *CustomerRequest:
		return check(r, customerRules)
	case *ProductRequest:
		return check(r, productRules)
	case *EmployeeRequest:
		return check(r, employeeRules)
	}
	panic(fmt.Sprintf("form: unsupported request type %T", req))
}

// Evaluate is the full request evaluation: an override code in
// {200,400,500} short-circuits everything, otherwise the form is
// validated and the outcome mapped onto a response.
func Evaluate(req Request) response.APIResponse {
	return response.Resolve(req.Override(), func() response.Outcome {
		return Validate(req)
	})
}

func check[R any](req R, rules []Rule[R]) response.Outcome {
	if rule, failed := firstFailure(req, rules); failed {
		return response.Invalid(rule.Message)
	}
	return response.Valid()
}

// validateButtons applies the field rules, then the option branch:
// "reject" forces a 400 and "pending" a 500, case-insensitively.
func validateButtons(r *ButtonsRequest) response.Outcome {
	if outcome := check(r, buttonsRules); outcome.Kind != response.KindValid {
		return outcome
	}

	var option string
	if r.Option != nil {
		option = strings.ToLower(*r.Option)
	}

	switch option {
	case OptionReject:
		return response.Forced(http.StatusBadRequest)
	case OptionPending:
		return response.Forced(http.StatusInternalServerError)
	}
	return response.Valid()
}
