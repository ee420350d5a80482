package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"asset-management-api/internal/model"

	"github.com/go-playground/validator/v10"
)

// MAC address validation constants
const (
	MACAddressLength = 17 // XX:XX:XX:XX:XX:XX format
)

// Employee validation constants
const (
	EmployeeIDMaxLength = 32
	HostnameMaxLength   = 255
)

var (
	macRegex        = regexp.MustCompile(`^([0-9A-F]{2}:){5}([0-9A-F]{2})$`)
	employeeIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared struct validator. Field errors are reported
// under their JSON names and the "employeeid" tag is registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = validate.RegisterValidation("employeeid", func(fl validator.FieldLevel) bool {
			return ValidateEmployeeID(fl.Field().String()) == nil
		})
	})
	return validate
}

// Struct validates v and returns a field -> message map, or nil when v is valid.
func Struct(v interface{}) map[string]string {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "employeeid":
		return fmt.Sprintf("%s may only contain letters, digits, '-' and '_'", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

// ValidateMAC validates a MAC address format and returns normalized version
func ValidateMAC(mac string) (string, error) {
	// Remove any spaces and convert to uppercase
	normalized := strings.ToUpper(strings.ReplaceAll(mac, " ", ""))

	// Convert hyphens to colons for consistency
	normalized = strings.ReplaceAll(normalized, "-", ":")

	if !macRegex.MatchString(normalized) {
		return "", fmt.Errorf("invalid MAC address format: %s", mac)
	}

	return normalized, nil
}

// ValidateHostname validates a computer hostname
func ValidateHostname(hostname string) error {
	if strings.TrimSpace(hostname) == "" {
		return fmt.Errorf("hostname is required")
	}

	if len(hostname) > HostnameMaxLength {
		return fmt.Errorf("hostname cannot exceed %d characters", HostnameMaxLength)
	}

	return nil
}

// ValidateEmployeeID validates a client supplied employee identifier
func ValidateEmployeeID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("employee_id is required")
	}

	if len(id) > EmployeeIDMaxLength {
		return fmt.Errorf("employee_id cannot exceed %d characters", EmployeeIDMaxLength)
	}

	if !employeeIDRegex.MatchString(id) {
		return fmt.Errorf("employee_id may only contain letters, digits, '-' and '_'")
	}

	return nil
}

// ValidateInitialStatus checks the status a computer may be created with.
// An empty status defaults to in_stock.
func ValidateInitialStatus(status model.ComputerStatus) (model.ComputerStatus, error) {
	if status == "" {
		return model.StatusInStock, nil
	}
	if !status.Reclaimable() {
		return "", fmt.Errorf("status must be one of in_stock, in_repair, retired")
	}
	return status, nil
}

// ValidateRequired checks if a string field is not empty
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateComputerInput validates all required fields for creating a new
// computer. The MAC address is normalized and the status defaulted in place.
func ValidateComputerInput(computer *model.Computer) map[string]string {
	fields := ValidateComputerInputForUpdate(computer)

	status, err := ValidateInitialStatus(computer.Status)
	if err != nil {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["status"] = err.Error()
	} else {
		computer.Status = status
	}

	return fields
}

// ValidateComputerInputForUpdate validates a computer update. Status is not
// part of an update and is left untouched.
func ValidateComputerInputForUpdate(computer *model.Computer) map[string]string {
	fields := Struct(computer)
	if fields == nil {
		fields = make(map[string]string)
	}

	if _, ok := fields["hostname"]; !ok {
		if err := ValidateHostname(computer.Hostname); err != nil {
			fields["hostname"] = err.Error()
		}
	}

	if _, ok := fields["mac_address"]; !ok {
		normalizedMAC, err := ValidateMAC(computer.MACAddress)
		if err != nil {
			fields["mac_address"] = err.Error()
		} else {
			computer.MACAddress = normalizedMAC
		}
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}
