package models

type Client struct {
	ID        string    `json:"id" db:"id" gorm:"column:id;type:text;primaryKey"`
	Name      string    `json:"name" db:"name" gorm:"column:name;type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"column:email;type:text;not null"`
	Phone     *string   `json:"phone" db:"phone" gorm:"column:phone;type:text"`
	Company   *string   `json:"company" db:"company" gorm:"column:company;type:text"`
	CreatedAt Timestamp `json:"created_at" db:"created_at" gorm:"column:created_at;not null"`
}

func (Client) TableName() string {
	return "clients"
}

// ClientInput is the payload accepted when creating a client
type ClientInput struct {
	Name    string  `json:"name" validate:"required,max=200"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Company *string `json:"company,omitempty"`
}

func (in ClientInput) Client() Client {
	return Client{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Company: in.Company,
	}
}

// ClientPatch holds the fields of a client update. Nil fields are left untouched;
// phone and company are cleared by an explicit null.
type ClientPatch struct {
	Name    *string        `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Email   *string        `json:"email,omitempty" validate:"omitempty,email"`
	Phone   NullableString `json:"phone"`
	Company NullableString `json:"company"`
}

// Columns returns only the columns present in the patch.
func (p ClientPatch) Columns() map[string]any {
	cols := map[string]any{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Email != nil {
		cols["email"] = *p.Email
	}
	if p.Phone.Set {
		cols["phone"] = p.Phone.column()
	}
	if p.Company.Set {
		cols["company"] = p.Company.column()
	}
	return cols
}
