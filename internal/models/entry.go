// Package models defines core data structures for entries, queries, and
// search results.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/panglesd/sherlodoc/internal/typexpr"
)

// KindClass is the coarse syntactic category of an entry, with any inner
// type payload discarded. It is what the ranking weight tables key on.
type KindClass int

const (
	// ClassDoc is a documentation-only entry (a comment block or page).
	ClassDoc KindClass = iota
	// ClassTypeDecl is a type declaration.
	ClassTypeDecl
	// ClassModule is a module.
	ClassModule
	// ClassException is an exception constructor.
	ClassException
	// ClassClassType is a class type.
	ClassClassType
	// ClassMethod is an object method.
	ClassMethod
	// ClassClass is a class.
	ClassClass
	// ClassTypeExtension is a type extension.
	ClassTypeExtension
	// ClassExtensionConstructor is an extension constructor.
	ClassExtensionConstructor
	// ClassModuleType is a module type.
	ClassModuleType
	// ClassConstructor is a variant constructor.
	ClassConstructor
	// ClassField is a record field.
	ClassField
	// ClassVal is a value binding.
	ClassVal
)

// String returns the canonical name of the kind class.
func (k KindClass) String() string {
	switch k {
	case ClassDoc:
		return "doc"
	case ClassTypeDecl:
		return "type"
	case ClassModule:
		return "module"
	case ClassException:
		return "exception"
	case ClassClassType:
		return "class_type"
	case ClassMethod:
		return "method"
	case ClassClass:
		return "class"
	case ClassTypeExtension:
		return "type_extension"
	case ClassExtensionConstructor:
		return "extension_constructor"
	case ClassModuleType:
		return "module_type"
	case ClassConstructor:
		return "constructor"
	case ClassField:
		return "field"
	case ClassVal:
		return "val"
	default:
		return "unknown"
	}
}

// ParseKindClass parses a canonical kind class name as produced by String.
func ParseKindClass(s string) (KindClass, error) {
	switch s {
	case "doc":
		return ClassDoc, nil
	case "type":
		return ClassTypeDecl, nil
	case "module":
		return ClassModule, nil
	case "exception":
		return ClassException, nil
	case "class_type":
		return ClassClassType, nil
	case "method":
		return ClassMethod, nil
	case "class":
		return ClassClass, nil
	case "type_extension":
		return ClassTypeExtension, nil
	case "extension_constructor":
		return ClassExtensionConstructor, nil
	case "module_type":
		return ClassModuleType, nil
	case "constructor":
		return ClassConstructor, nil
	case "field":
		return ClassField, nil
	case "val":
		return ClassVal, nil
	default:
		return 0, fmt.Errorf("unknown entry kind %q", s)
	}
}

// NewKind builds an EntryKind from a coarse class and an optional inner
// type. The inner type is kept only for type-bearing classes.
func NewKind(class KindClass, inner *typexpr.Type) EntryKind {
	k := EntryKind{class: class}
	if k.TypeBearing() {
		k.inner = inner
	}
	return k
}

// EntryKind is the full syntactic category of an entry. The five
// type-bearing variants (exception, extension constructor, constructor,
// field, val) carry the entry's inner type signature, used for type
// matching. Construct values with the Kind* constructors below.
type EntryKind struct {
	class KindClass
	inner *typexpr.Type
}

// NewDocKind returns the kind of a documentation-only entry.
func NewDocKind() EntryKind { return EntryKind{class: ClassDoc} }

// NewTypeDeclKind returns the kind of a type declaration entry.
func NewTypeDeclKind() EntryKind { return EntryKind{class: ClassTypeDecl} }

// NewModuleKind returns the kind of a module entry.
func NewModuleKind() EntryKind { return EntryKind{class: ClassModule} }

// NewExceptionKind returns the kind of an exception entry with its payload type.
func NewExceptionKind(t *typexpr.Type) EntryKind {
	return EntryKind{class: ClassException, inner: t}
}

// NewClassTypeKind returns the kind of a class type entry.
func NewClassTypeKind() EntryKind { return EntryKind{class: ClassClassType} }

// NewMethodKind returns the kind of a method entry.
func NewMethodKind() EntryKind { return EntryKind{class: ClassMethod} }

// NewClassKind returns the kind of a class entry.
func NewClassKind() EntryKind { return EntryKind{class: ClassClass} }

// NewTypeExtensionKind returns the kind of a type extension entry.
func NewTypeExtensionKind() EntryKind { return EntryKind{class: ClassTypeExtension} }

// NewExtensionConstructorKind returns the kind of an extension constructor
// entry with its type.
func NewExtensionConstructorKind(t *typexpr.Type) EntryKind {
	return EntryKind{class: ClassExtensionConstructor, inner: t}
}

// NewModuleTypeKind returns the kind of a module type entry.
func NewModuleTypeKind() EntryKind { return EntryKind{class: ClassModuleType} }

// NewConstructorKind returns the kind of a variant constructor entry with its type.
func NewConstructorKind(t *typexpr.Type) EntryKind {
	return EntryKind{class: ClassConstructor, inner: t}
}

// NewFieldKind returns the kind of a record field entry with its type.
func NewFieldKind(t *typexpr.Type) EntryKind {
	return EntryKind{class: ClassField, inner: t}
}

// NewValKind returns the kind of a value entry with its type.
func NewValKind(t *typexpr.Type) EntryKind {
	return EntryKind{class: ClassVal, inner: t}
}

// Class projects the full kind onto its coarse class, erasing any payload.
func (k EntryKind) Class() KindClass { return k.class }

// TypeBearing reports whether the kind is one of the five variants that
// carry an inner type signature.
func (k EntryKind) TypeBearing() bool {
	switch k.class {
	case ClassException, ClassExtensionConstructor, ClassConstructor, ClassField, ClassVal:
		return true
	default:
		return false
	}
}

// InnerType returns the inner type signature and whether one is carried.
// Type-bearing kinds may still carry a nil signature when the source index
// omitted it; ok is false in that case too.
func (k EntryKind) InnerType() (*typexpr.Type, bool) {
	if !k.TypeBearing() || k.inner == nil {
		return nil, false
	}
	return k.inner, true
}

// String returns the coarse class name.
func (k EntryKind) String() string { return k.class.String() }

// MarshalJSON renders the kind as its coarse class name, for API responses.
func (k EntryKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.class.String())
}

// UnmarshalJSON parses the coarse class name as produced by MarshalJSON.
// The inner type is not part of the JSON form and is left unset.
func (k *EntryKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	class, err := ParseKindClass(s)
	if err != nil {
		return err
	}
	*k = EntryKind{class: class}
	return nil
}

// Package identifies the package an entry was extracted from.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Entry represents one indexed documentation item eligible to appear in
// search results. Cost is an output field, overwritten per query by the
// ranking core; all other fields are read-only to ranking.
type Entry struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Rhs              string    `json:"rhs,omitempty"`
	URL              string    `json:"url"`
	Kind             EntryKind `json:"kind"`
	DocHTML          string    `json:"doc_html"`
	Pkg              Package   `json:"pkg"`
	IsFromModuleType bool      `json:"is_from_module_type"`
	Cost             int       `json:"cost"`
	CreatedAt        time.Time `json:"created_at,omitempty"`
}
