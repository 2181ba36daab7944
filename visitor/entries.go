package visitor

import (
	"fmt"
	"reflect"
	"sort"
)

// MapOf returns a visitor over map entries ordered by the textual form of their keys
func MapOf(value interface{}) (Visitor[any, any], error) {
	rValue := reflect.ValueOf(value)
	if rValue.Kind() != reflect.Map {
		return nil, fmt.Errorf("expected map, got %T", value)
	}
	keys := rValue.MapKeys()
	names := make([]string, len(keys))
	for i, key := range keys {
		names[i] = fmt.Sprint(key.Interface())
	}
	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool { return names[order[i]] < names[order[j]] })
	return func(f func(key any, element any) (bool, error)) error {
		for _, i := range order {
			continueVisit, err := f(keys[i].Interface(), rValue.MapIndex(keys[i]).Interface())
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}, nil
}

// EntriesOf returns a visitor over map entries with keys stringified and sorted,
// so that iteration order is deterministic
func EntriesOf(value interface{}) (Visitor[string, any], error) {
	switch actual := value.(type) {
	case map[string]interface{}:
		return sortedEntries(actual), nil
	case map[string]string:
		return sortedEntries(actual), nil
	case map[string]int:
		return sortedEntries(actual), nil
	case map[string]bool:
		return sortedEntries(actual), nil
	}
	visit, err := MapOf(value)
	if err != nil {
		return nil, err
	}
	return func(f func(key string, element any) (bool, error)) error {
		return visit(func(key any, element any) (bool, error) {
			return f(fmt.Sprint(key), element)
		})
	}, nil
}

func sortedEntries[E any](aMap map[string]E) Visitor[string, any] {
	keys := make([]string, 0, len(aMap))
	for k := range aMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return func(f func(key string, element any) (bool, error)) error {
		for _, k := range keys {
			continueVisit, err := f(k, aMap[k])
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}
