package postgres

func nullableString(value string) *string {
	if value == "" {
		return nil
	}
	v := value
	return &v
}
