package domain

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Mode is a travel mode recognized by the routing request composer.
type Mode string

const (
	ModeDrive      Mode = "drive"
	ModeBicycle    Mode = "bicycle"
	ModeTwoWheeler Mode = "two_wheeler"
	ModeTransit    Mode = "transit"
	ModeWalk       Mode = "walk"
)

// Engine is a vehicle engine type used for eco-routing. It only influences
// routing when the mode is drive.
type Engine string

const (
	EngineGasoline Engine = "gasoline"
	EngineElectric Engine = "electric"
	EngineHybrid   Engine = "hybrid"
	EngineDiesel   Engine = "diesel"
)

// Modes lists the recognized travel modes in a stable order.
func Modes() []string {
	return []string{
		string(ModeDrive),
		string(ModeBicycle),
		string(ModeTwoWheeler),
		string(ModeTransit),
		string(ModeWalk),
	}
}

// Engines lists the recognized engine types in a stable order.
func Engines() []string {
	return []string{
		string(EngineGasoline),
		string(EngineElectric),
		string(EngineHybrid),
		string(EngineDiesel),
	}
}

// VehicleProfile is a named bundle of routing preferences (a "garage" entry).
// The name is the store key, compared case-insensitively. Engine is retained
// but ignored when the mode is not drive.
type VehicleProfile struct {
	Name          string `json:"name" validate:"required"`
	Mode          Mode   `json:"mode" validate:"required,oneof=drive bicycle two_wheeler transit walk"`
	Engine        Engine `json:"engine,omitempty" validate:"omitempty,oneof=gasoline electric hybrid diesel"`
	AvoidHighways bool   `json:"avoid_highways,omitempty"`
	AvoidTolls    bool   `json:"avoid_tolls,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the profile's fields against the recognized enumerations.
// Violations are reported as *InvalidInputError naming the offending field.
func (v VehicleProfile) Validate() error {
	return checkStruct(v)
}

// checkStruct runs validator tags and converts the first violation into the
// error taxonomy used across the module.
func checkStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	return &InvalidInputError{
		Field:   fieldLabel(fe.Field()),
		Value:   asString(fe.Value()),
		Allowed: allowedFor(fe.Field()),
	}
}

func fieldLabel(structField string) string {
	switch structField {
	case "Mode":
		return "mode"
	case "Engine":
		return "engine"
	case "Name":
		return "name"
	case "Address":
		return "address"
	default:
		return structField
	}
}

func allowedFor(structField string) []string {
	switch structField {
	case "Mode":
		return Modes()
	case "Engine":
		return Engines()
	default:
		return nil
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case Mode:
		return string(s)
	case Engine:
		return string(s)
	default:
		return ""
	}
}
