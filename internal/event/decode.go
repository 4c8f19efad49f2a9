package event

import "encoding/json"

// DecodePayload converts an event payload into T. Payloads published
// through the in-process MemoryBus arrive as the concrete struct and
// only need a type assertion; payloads replayed from the dead-letter
// file arrive as map[string]any and take the JSON round-trip path.
func DecodePayload[T any](input interface{}) (T, error) {
	if v, ok := input.(T); ok {
		return v, nil
	}
	if p, ok := input.(*T); ok && p != nil {
		return *p, nil
	}
	var result T
	data, err := json.Marshal(input)
	if err != nil {
		return result, err
	}
	return result, json.Unmarshal(data, &result)
}
