// Package test generates test inputs from combinations of independent aspects.
package test

// Aspect represents an aspect of a test case that can have multiple values.
type Aspect[V any] []AspectValue[V]

// AspectValue represents a single value for an aspect of a test case.
type AspectValue[V any] struct {
	key      string   // The key used to identify the value in the test case.
	name     string   // The name of the value, used for generating test case names.
	value    V        // The actual value of the aspect.
	valueGen func() V // If provided, a function to generate the value dynamically.
}

// genTestCases generates all combinations of test cases based on the provided aspects and values.
func genTestCases[V any](
	name string,
	values []AspectValue[V],
	cases map[string]map[string]V,
	aspects ...Aspect[V],
) {
	if len(aspects) == 0 {
		cases[name] = make(map[string]V, len(values))

		for _, v := range values {
			val := v.value

			// if generator is provided, use it to generate the value.
			if v.valueGen != nil {
				val = v.valueGen()
			}

			cases[name][v.key] = val
		}

		return
	}

	for _, v := range aspects[0] {
		finalName := name

		// If the name is not empty, append an underscore before adding the new value.
		if finalName != "" {
			finalName += "_"
		}

		finalName += v.name

		// Recursively generate test cases for the remaining aspects. Clip values so sibling
		// branches never share a backing array.
		genTestCases(finalName, append(values[:len(values):len(values)], v), cases, aspects[1:]...)
	}
}

// NewAspect creates a new aspect with the given key and values, for creating values you can use [NewValue] or
// [CreateValue]. aspect value is indexed by the provided key in the test case map.
func NewAspect[V any](key string, values ...AspectValue[V]) Aspect[V] {
	for i := range values {
		values[i].key = key
	}

	return values
}

// NewValue creates a new aspect value with the given name and value. The value is used directly in the test case.
// If the value must not be shared between test cases use [CreateValue] instead.
func NewValue[V any](name string, value V) AspectValue[V] {
	return AspectValue[V]{
		name:  name,
		value: value,
	}
}

// CreateValue creates a new aspect value with the given name and a generator function. The generator function is
// called each time the test case is generated.
func CreateValue[V any](name string, generator func() V) AspectValue[V] {
	return AspectValue[V]{
		name:     name,
		valueGen: generator,
	}
}

// GenTestCases generates all combinations of test cases based on the provided aspects and values, and returns them as
// a map where the keys are the test case names, and the values are maps of aspect keys to their corresponding values.
func GenTestCases[V any](aspects ...Aspect[V]) map[string]map[string]V {
	comb := 1
	for _, a := range aspects {
		comb *= len(a)
	}

	testCases := make(map[string]map[string]V, comb)
	values := make([]AspectValue[V], 0, len(aspects))

	genTestCases("", values, testCases, aspects...)

	return testCases
}
