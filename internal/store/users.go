package store

// CreateUser registers name. Names are unique.
func (s *Store) CreateUser(name, password string) error {
	return s.mutate(func() (Event, error) {
		for _, u := range s.data.Users {
			if u.Name == name {
				return Event{}, ErrUserExists
			}
		}
		s.data.Users = append(s.data.Users, User{Name: name, Password: password})
		return Event{}, nil
	})
}

// Authenticate checks name and password against the stored account.
func (s *Store) Authenticate(name, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.Users {
		if u.Name == name && u.Password == password {
			return nil
		}
	}
	return ErrInvalidCredentials
}

func (s *Store) UserExists(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.Users {
		if u.Name == name {
			return true
		}
	}
	return false
}
