package errors

// Error codes for the Alethe proof checker.
// These codes are used in error messages to provide consistent error
// identification across rule checkers and the elaborator.
//
// Error code ranges:
// C0001-C0099: Shared-assertion errors (premises, clause, args, operators)
// C0100-C0199: Equality-reasoning errors
// C0900-C0999: Dispatcher errors

const (
	// C0001: Wrong number of premises for a rule
	CodeWrongNumberOfPremises = "C0001"

	// C0002: Wrong clause length
	CodeWrongLengthOfClause = "C0002"

	// C0003: Wrong number of rule arguments
	CodeWrongNumberOfArgs = "C0003"

	// C0004: Wrong number of terms in an operator application
	CodeWrongNumberOfTermsInOp = "C0004"

	// C0005: Two terms expected to be equal were not
	CodeExpectedEqual = "C0005"

	// C0006: A value did not match the single value expected
	CodeExpectedToBe = "C0006"

	// C0007: A term was expected to be a specific boolean constant
	CodeExpectedBoolConstant = "C0007"

	// C0008: A premise's clause did not have the required length
	CodeWrongLengthOfPremiseClause = "C0008"

	// C0101: The transitivity/equality-transitivity chain could not be closed
	CodeBrokenTransitivityChain = "C0101"

	// C0901: An unknown rule name was referenced by a step
	CodeUnknownRule = "C0901"
)

// Description returns a human-readable description of the error code.
func Description(code string) string {
	switch code {
	case CodeWrongNumberOfPremises:
		return "rule received a number of premises outside the range it accepts"
	case CodeWrongLengthOfClause:
		return "step clause length is outside the range the rule accepts"
	case CodeWrongNumberOfArgs:
		return "rule received a number of arguments outside the range it accepts"
	case CodeWrongNumberOfTermsInOp:
		return "operator application has the wrong number of arguments"
	case CodeExpectedEqual:
		return "two terms expected to be equal were not"
	case CodeExpectedToBe:
		return "a value did not match what the rule expected"
	case CodeExpectedBoolConstant:
		return "a term was expected to be a specific boolean constant"
	case CodeWrongLengthOfPremiseClause:
		return "a referenced premise's clause did not have the required length"
	case CodeBrokenTransitivityChain:
		return "the equality chain could not be closed between the stated endpoints"
	case CodeUnknownRule:
		return "no checker is registered for the referenced rule name"
	default:
		return "unknown error code"
	}
}
