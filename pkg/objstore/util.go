package objstore

import "strings"

func validateConfig(cfg *ObjStoreConfig) error {
	if cfg.Endpoint == "" {
		return NewInvalidInputError("endpoint is required")
	}
	if cfg.AccessKey == "" {
		return NewInvalidInputError("access key is required")
	}
	if cfg.SecretKey == "" {
		return NewInvalidInputError("secret key is required")
	}
	if cfg.Bucket == "" {
		return NewInvalidInputError("bucket is required")
	}
	if err := validateBucketName(cfg.Bucket); err != nil {
		return err
	}
	if !strings.Contains(cfg.Endpoint, ":") {
		cfg.Endpoint = cfg.Endpoint + DefaultEndpointPort
	}
	return nil
}

func validateBucketName(bucketName string) error {
	if len(bucketName) < 3 {
		return NewInvalidInputError("bucket name must be at least 3 characters")
	}
	if len(bucketName) > 63 {
		return NewInvalidInputError("bucket name cannot exceed 63 characters")
	}
	for _, char := range bucketName {
		if !((char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-') {
			return NewInvalidInputError("bucket name can only contain lowercase letters, numbers, and hyphens")
		}
	}
	if strings.HasPrefix(bucketName, "-") || strings.HasSuffix(bucketName, "-") {
		return NewInvalidInputError("bucket name cannot start or end with hyphen")
	}
	return nil
}

func validateObjectName(objectName string) error {
	if objectName == "" {
		return NewInvalidInputError("object name is required")
	}
	if strings.HasPrefix(objectName, "/") {
		return NewInvalidInputError("object name cannot start with '/'")
	}
	if strings.HasSuffix(objectName, "/") {
		return NewInvalidInputError("object name cannot end with '/'")
	}
	if strings.Contains(objectName, "\\") {
		return NewInvalidInputError("object name cannot contain backslashes")
	}
	return nil
}
