package customer

// GithubProfile is the externally sourced identity used as update input.
// It is validated like the corresponding customer fields and never
// persisted directly.
type GithubProfile struct {
	ID        string  `validate:"min=1,max=40"`
	Email     string  `validate:"email"`
	Name      string  `validate:"min=1,max=80"`
	AvatarURL *string `validate:"omitempty,url"`
}

// Validate checks the field-level validation rules.
func (p *GithubProfile) Validate() error {
	return validate.Struct(p)
}
