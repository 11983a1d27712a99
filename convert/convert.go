package convert

// YAMLToJSON parses YAML text and re-serializes it as compact JSON.
//
// Mapping key order is preserved. Integer and float scalars become JSON
// numbers, booleans and nulls become their JSON literals, and every other
// scalar becomes a JSON string.
func YAMLToJSON(text string, opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", err
	}
	v, err := cfg.parseYAML(text)
	if err != nil {
		cfg.logger.Debug("yaml to json failed", "stage", "parse", "error", err)
		return "", err
	}
	out, err := cfg.encodeJSON(v)
	if err != nil {
		cfg.logger.Debug("yaml to json failed", "stage", "serialize", "error", err)
		return "", err
	}
	cfg.logger.Debug("converted yaml to json", "in_bytes", len(text), "out_bytes", len(out))
	return out, nil
}

// JSONToYAML parses JSON text and re-serializes it as YAML in the given style.
func JSONToYAML(text string, style Style, opts ...Option) (string, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return "", err
	}
	v, err := cfg.parseJSON(text)
	if err != nil {
		cfg.logger.Debug("json to yaml failed", "stage", "parse", "error", err)
		return "", err
	}
	out, err := cfg.encodeYAML(v, style)
	if err != nil {
		cfg.logger.Debug("json to yaml failed", "stage", "serialize", "error", err)
		return "", err
	}
	cfg.logger.Debug("converted json to yaml", "style", style, "in_bytes", len(text), "out_bytes", len(out))
	return out, nil
}

// ValidateYAML reports whether text parses as YAML under the configured limits.
// Invalid options make every input invalid.
func ValidateYAML(text string, opts ...Option) bool {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return false
	}
	_, err = cfg.parseYAML(text)
	return err == nil
}

// ValidateJSON reports whether text parses as a single strict JSON value.
func ValidateJSON(text string, opts ...Option) bool {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return false
	}
	_, err = cfg.parseJSON(text)
	return err == nil
}
