package pipeline

import (
	"fmt"
	"strings"
)

const (
	optionStringTypeErrorTemplateConstant      = "option %s must be a string"
	optionBooleanTypeErrorTemplateConstant     = "option %s must be a boolean"
	optionStringSliceTypeErrorTemplateConstant = "option %s must be a list of strings"
)

// optionReader extracts typed values from declarative step options.
type optionReader struct {
	options map[string]any
}

func newOptionReader(options map[string]any) optionReader {
	return optionReader{options: options}
}

func (reader optionReader) lookup(optionKey string) (any, bool) {
	for rawKey, rawValue := range reader.options {
		if strings.EqualFold(strings.TrimSpace(rawKey), optionKey) {
			return rawValue, true
		}
	}
	return nil, false
}

func (reader optionReader) stringValue(optionKey string) (string, bool, error) {
	rawValue, exists := reader.lookup(optionKey)
	if !exists {
		return "", false, nil
	}
	stringValue, isString := rawValue.(string)
	if !isString {
		return "", false, fmt.Errorf(optionStringTypeErrorTemplateConstant, optionKey)
	}
	return stringValue, true, nil
}

func (reader optionReader) boolValue(optionKey string) (bool, bool, error) {
	rawValue, exists := reader.lookup(optionKey)
	if !exists {
		return false, false, nil
	}
	booleanValue, isBoolean := rawValue.(bool)
	if !isBoolean {
		return false, false, fmt.Errorf(optionBooleanTypeErrorTemplateConstant, optionKey)
	}
	return booleanValue, true, nil
}

func (reader optionReader) stringSliceValue(optionKey string) ([]string, bool, error) {
	rawValue, exists := reader.lookup(optionKey)
	if !exists {
		return nil, false, nil
	}

	switch typedValue := rawValue.(type) {
	case []string:
		return append([]string{}, typedValue...), true, nil
	case []any:
		values := make([]string, 0, len(typedValue))
		for _, element := range typedValue {
			stringElement, isString := element.(string)
			if !isString {
				return nil, false, fmt.Errorf(optionStringSliceTypeErrorTemplateConstant, optionKey)
			}
			values = append(values, stringElement)
		}
		return values, true, nil
	default:
		return nil, false, fmt.Errorf(optionStringSliceTypeErrorTemplateConstant, optionKey)
	}
}
