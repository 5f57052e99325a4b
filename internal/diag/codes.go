package diag

import "fmt"

// Code bands diagnostics by the phase that raised them, matching the
// teacher's lexer/parser code banding convention extended with the bands
// this checker actually emits (parsing is an out-of-scope collaborator, so
// the 1000s/2000s bands are reserved but unused here).
type Code uint16

const (
	UnknownCode Code = 0

	// Type-table invariant diagnostics (3000s).
	TableDuplicateName    Code = 3001
	TableAliasCycle       Code = 3002
	TableUnknownType      Code = 3003
	TableInterfaceOnIface Code = 3004

	// Checker / expression-typing diagnostics (4000s).
	CheckUnknownIdent        Code = 4001
	CheckTypeMismatch        Code = 4002
	CheckNotAddressable      Code = 4003
	CheckDuplicateConst      Code = 4004
	CheckUnusedVariable      Code = 4005
	CheckNonExhaustiveMatch  Code = 4006
	CheckBadIndex            Code = 4007
	CheckBadCast             Code = 4008
	CheckArgCountMismatch    Code = 4009
	CheckArgTypeMismatch     Code = 4010
	CheckAmbiguousPrecedence Code = 4011
	CheckOptionalUnhandled   Code = 4012
	CheckImportNotFound      Code = 4013
	CheckImportShadowsConst  Code = 4014
	CheckDuplicateImport     Code = 4015
	CheckDeprecatedUse       Code = 4016
	CheckMissingMain         Code = 4017
	CheckUnusedMutable       Code = 4018

	// Generics diagnostics (5000s).
	GenericAmbiguousInference Code = 5001
	GenericUnboundParam       Code = 5002
	GenericRecheckNoConverge  Code = 5003

	// Interface-conformance diagnostics (5500s).
	IfaceMissingMethod    Code = 5501
	IfaceMethodMismatch   Code = 5502
	IfaceMissingField     Code = 5503
	IfaceFieldMutMismatch Code = 5504

	// Mutability / locking / unsafe diagnostics (6000s).
	MutImmutableAssign   Code = 6001
	MutConstAssign       Code = 6002
	MutSharedNeedsLock   Code = 6003
	MutLockNested        Code = 6004
	MutLockDuplicateName Code = 6005
	MutUnsafeRequired    Code = 6006
	MutFieldNotMut       Code = 6007

	// Resource-cutoff diagnostics (7000s).
	LimitExprNesting    Code = 7001
	LimitStmtNesting    Code = 7002
	LimitEmbedDepth     Code = 7003
	LimitMessagesExceeded Code = 7004
)

// ID renders c in the teacher's banded-prefix style (e.g. "SEM4002"),
// human-readable shorthand for the diagnostic renderer and snapshot export.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("TBL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 5000 && ic < 5500:
		return fmt.Sprintf("GEN%04d", ic)
	case ic >= 5500 && ic < 6000:
		return fmt.Sprintf("IFC%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("MUT%04d", ic)
	case ic >= 7000 && ic < 8000:
		return fmt.Sprintf("LIM%04d", ic)
	}
	return "E0000"
}
