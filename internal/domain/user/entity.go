package user

type User struct {
	id    int64
	name  Name
	email Email
}

func NewUser(name, email string) (*User, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	e, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	return &User{name: n, email: e}, nil
}

func Reconstruct(id int64, name, email string) *User {
	return &User{
		id:    id,
		name:  Name{value: name},
		email: Email{value: email},
	}
}

// Patch carries the fields a user may change; nil leaves a field as is.
type Patch struct {
	Name  *string
	Email *string
}

func (u *User) Apply(p Patch) error {
	name, email := u.name, u.email
	if p.Name != nil {
		n, err := NewName(*p.Name)
		if err != nil {
			return err
		}
		name = n
	}
	if p.Email != nil {
		e, err := NewEmail(*p.Email)
		if err != nil {
			return err
		}
		email = e
	}
	u.name, u.email = name, email
	return nil
}

func (u *User) ID() int64    { return u.id }
func (u *User) Name() Name   { return u.name }
func (u *User) Email() Email { return u.email }
