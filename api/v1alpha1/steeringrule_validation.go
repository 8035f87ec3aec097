/*
Copyright 2022.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	"fmt"
	"reflect"
	"strings"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/apimachinery/pkg/util/validation/field"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
)

// MaxSteeringLookups is the longest lookup chain a single matcher can hold.
const MaxSteeringLookups = 21

// log is for logging in this package.
var steeringrulelog = logf.Log.WithName("steeringrule-resource")

var _ webhook.Validator = &SteeringRule{}

// ValidateCreate implements webhook.Validator so a webhook will be registered for the type
func (r *SteeringRule) ValidateCreate() error {
	steeringrulelog.Info("validate create", "name", r.Name)

	return ValidateSteeringRule(r)
}

// ValidateUpdate implements webhook.Validator so a webhook will be registered for the type
func (r *SteeringRule) ValidateUpdate(old runtime.Object) error {
	steeringrulelog.Info("validate update", "name", r.Name)

	return ValidateSteeringRule(r)
}

// ValidateDelete implements webhook.Validator so a webhook will be registered for the type
func (r *SteeringRule) ValidateDelete() error {
	steeringrulelog.Info("validate delete", "name", r.Name)

	return nil
}

// ValidateSteeringRule checks the structural constraints of a rule: known
// lookups, field values that fit their declared widths, and values that
// only set bits covered by the mask.
func ValidateSteeringRule(sr *SteeringRule) error {
	var allErrs field.ErrorList
	spec := field.NewPath("spec")

	if sr.Spec.HardwareVersion != 0 {
		allErrs = append(allErrs, field.NotSupported(spec.Child("hardwareVersion"),
			sr.Spec.HardwareVersion, []string{"0"}))
	}
	switch sr.Spec.Direction {
	case SteeringDirectionRx, SteeringDirectionTx:
	default:
		allErrs = append(allErrs, field.NotSupported(spec.Child("direction"),
			sr.Spec.Direction, []string{string(SteeringDirectionRx), string(SteeringDirectionTx)}))
	}

	allErrs = append(allErrs, validateLookups(sr.Spec.Lookups, spec.Child("lookups"))...)
	allErrs = append(allErrs, validateMatchWidths(&sr.Spec.Mask, spec.Child("mask"))...)
	for i := range sr.Spec.Values {
		p := spec.Child("values").Index(i)
		allErrs = append(allErrs, validateMatchWidths(&sr.Spec.Values[i], p)...)
		allErrs = append(allErrs, validateCoveredByMask(&sr.Spec.Values[i], &sr.Spec.Mask, p)...)
	}

	if len(allErrs) > 0 {
		return apierrors.NewInvalid(
			schema.GroupKind{Group: GroupVersion.Group, Kind: "SteeringRule"},
			sr.Name, allErrs)
	}
	return nil
}

func validateLookups(lookups []SteeringLookup, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList
	if len(lookups) == 0 {
		return append(allErrs, field.Required(path, "must be at least one lookup"))
	}
	if len(lookups) > MaxSteeringLookups {
		allErrs = append(allErrs, field.TooMany(path, len(lookups), MaxSteeringLookups))
	}

	known := map[LookupName]bool{}
	for _, n := range LookupNames() {
		known[n] = true
	}
	seen := map[SteeringLookup]bool{}
	for i, l := range lookups {
		if !known[l.Name] {
			allErrs = append(allErrs, field.NotSupported(path.Index(i).Child("name"), l.Name, lookupNameStrings()))
			continue
		}
		if seen[l] {
			allErrs = append(allErrs, field.Duplicate(path.Index(i), l))
		}
		seen[l] = true
	}
	return allErrs
}

func validateMatchWidths(p *MatchParam, path *field.Path) field.ErrorList {
	var allErrs field.ErrorList
	walkMatchFields(reflect.ValueOf(p).Elem(), "", func(name string, width int, v uint64) {
		if width < 64 && v>>uint(width) != 0 {
			allErrs = append(allErrs, field.Invalid(childPath(path, name), v,
				fmt.Sprintf("must fit in %d bits", width)))
		}
	})
	return allErrs
}

func validateCoveredByMask(value, mask *MatchParam, path *field.Path) field.ErrorList {
	masks := map[string]uint64{}
	walkMatchFields(reflect.ValueOf(mask).Elem(), "", func(name string, _ int, v uint64) {
		masks[name] = v
	})

	var allErrs field.ErrorList
	walkMatchFields(reflect.ValueOf(value).Elem(), "", func(name string, _ int, v uint64) {
		if v&^masks[name] != 0 {
			allErrs = append(allErrs, field.Invalid(childPath(path, name), v,
				fmt.Sprintf("sets bits outside of mask %#x", masks[name])))
		}
	})
	return allErrs
}

func childPath(path *field.Path, dotted string) *field.Path {
	parts := strings.Split(dotted, ".")
	return path.Child(parts[0], parts[1:]...)
}

func lookupNameStrings() []string {
	names := LookupNames()
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, string(n))
	}
	return out
}
