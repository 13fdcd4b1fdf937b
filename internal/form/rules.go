package form

import "regexp"

var (
	digitPattern        = regexp.MustCompile(`[0-9]`)
	buttonsEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9@.\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	skuPattern          = regexp.MustCompile(`^[A-Z0-9-]{5,}$`)
	employeeIDPattern   = regexp.MustCompile(`^EMP-[0-9]{5}$`)
)

// Option values of the Buttons form that force a response code.
const (
	OptionReject  = "reject"
	OptionPending = "pending"
)

// The rule tables below are the external contract: order and message
// text are reproduced verbatim by callers' tests.

var buttonsRules = []Rule[*ButtonsRequest]{
	requiredText("username", func(r *ButtonsRequest) *string { return r.Username }, "Required"),
	textSatisfying("username", func(r *ButtonsRequest) *string { return r.Username }, "alphanum", "Please enter a valid username"),
	requiredText("password", func(r *ButtonsRequest) *string { return r.Password }, "Required"),
	textContaining("password", func(r *ButtonsRequest) *string { return r.Password }, digitPattern, "Please enter a valid password"),
	requiredText("email", func(r *ButtonsRequest) *string { return r.Email }, "Required"),
	textMatching("email", func(r *ButtonsRequest) *string { return r.Email }, buttonsEmailPattern, "Please enter a valid email address"),
}

// subscribeNewsletter is optional and has no rule.
var customerRules = []Rule[*CustomerRequest]{
	requiredText("title", func(r *CustomerRequest) *string { return r.Title }, "Please select a title"),
	requiredText("firstName", func(r *CustomerRequest) *string { return r.FirstName }, "First name is required"),
	textSatisfying("firstName", func(r *CustomerRequest) *string { return r.FirstName }, "alpha,min=2", "First name must contain only letters (minimum 2 characters)"),
	requiredText("lastName", func(r *CustomerRequest) *string { return r.LastName }, "Last name is required"),
	textSatisfying("lastName", func(r *CustomerRequest) *string { return r.LastName }, "alpha,min=2", "Last name must contain only letters (minimum 2 characters)"),
	present("ageRange", func(r *CustomerRequest) *int { return r.AgeRange }, "Please select an age range"),
	intSatisfying("ageRange", func(r *CustomerRequest) *int { return r.AgeRange }, "oneof=1 2 3", "Invalid age range"),
	mustBeTrue("agreeToTerms", func(r *CustomerRequest) *bool { return r.AgreeToTerms }, "You must agree to terms"),
}

// featured is optional and has no rule.
var productRules = []Rule[*ProductRequest]{
	requiredText("productName", func(r *ProductRequest) *string { return r.ProductName }, "Product name is required"),
	textSatisfying("productName", func(r *ProductRequest) *string { return r.ProductName }, "min=3", "Product name must be at least 3 characters"),
	requiredText("category", func(r *ProductRequest) *string { return r.Category }, "Please select a category"),
	requiredText("sku", func(r *ProductRequest) *string { return r.SKU }, "SKU is required"),
	textMatching("sku", func(r *ProductRequest) *string { return r.SKU }, skuPattern, "SKU must be uppercase alphanumeric with dash (min 5 chars)"),
	present("quantity", func(r *ProductRequest) *int { return r.Quantity }, "Quantity is required"),
	intSatisfying("quantity", func(r *ProductRequest) *int { return r.Quantity }, "min=1", "Quantity must be at least 1"),
	intSatisfying("quantity", func(r *ProductRequest) *int { return r.Quantity }, "max=999999", "Quantity cannot exceed 999999"),
	present("priceRange", func(r *ProductRequest) *int { return r.PriceRange }, "Please select a price range"),
	intSatisfying("priceRange", func(r *ProductRequest) *int { return r.PriceRange }, "oneof=1 2 3", "Invalid price range"),
	mustBeTrue("inStock", func(r *ProductRequest) *bool { return r.InStock }, "Product must be in stock to register"),
}

// attendTraining is optional and has no rule.
var employeeRules = []Rule[*EmployeeRequest]{
	requiredText("employeeId", func(r *EmployeeRequest) *string { return r.EmployeeID }, "Employee ID is required"),
	textMatching("employeeId", func(r *EmployeeRequest) *string { return r.EmployeeID }, employeeIDPattern, "Employee ID must match format: EMP-12345"),
	requiredText("department", func(r *EmployeeRequest) *string { return r.Department }, "Please select a department"),
	requiredText("email", func(r *EmployeeRequest) *string { return r.Email }, "Email is required"),
	textSatisfying("email", func(r *EmployeeRequest) *string { return r.Email }, "email", "Please enter a valid email address"),
	present("yearsOfService", func(r *EmployeeRequest) *int { return r.YearsOfService }, "Years of service is required"),
	intSatisfying("yearsOfService", func(r *EmployeeRequest) *int { return r.YearsOfService }, "min=0", "Years must be 0 or greater"),
	intSatisfying("yearsOfService", func(r *EmployeeRequest) *int { return r.YearsOfService }, "max=50", "Years cannot exceed 50"),
	present("satisfactionRating", func(r *EmployeeRequest) *int { return r.SatisfactionRating }, "Please select a satisfaction rating"),
	intSatisfying("satisfactionRating", func(r *EmployeeRequest) *int { return r.SatisfactionRating }, "oneof=1 2 3", "Invalid satisfaction rating"),
	mustBeTrue("recommendCompany", func(r *EmployeeRequest) *bool { return r.RecommendCompany }, "You must recommend the company to proceed"),
}
