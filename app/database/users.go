package database

import (
	"errors"

	"ecole-portail/app/models"
	"ecole-portail/app/store"
)

var (
	// ErrUsernameTaken is returned when a create or rename would duplicate
	// an existing username in any role list.
	ErrUsernameTaken = errors.New("cet identifiant est déjà utilisé")
	// ErrNotFound is returned when a record referenced by a stale id no
	// longer exists.
	ErrNotFound = errors.New("enregistrement introuvable")
	// ErrLastAdmin is returned when deleting the last remaining admin.
	ErrLastAdmin = errors.New("impossible de supprimer le dernier administrateur")
)

// LoadUsers returns the users collection, falling back to the documented
// default shape when the key is absent or malformed.
func LoadUsers(s *store.Store) *models.Users {
	users := &models.Users{}
	s.Load(store.KeyUsers, users)
	if users.Admins == nil {
		users.Admins = []*models.Admin{}
	}
	if users.Profs == nil {
		users.Profs = []*models.Teacher{}
	}
	if users.Eleves == nil {
		users.Eleves = []*models.Student{}
	}
	return users
}

// SaveUsers persists the whole users collection.
func SaveUsers(s *store.Store, users *models.Users) error {
	return s.Save(store.KeyUsers, users)
}

// FindStudentByID looks a student up by its store-assigned id.
func FindStudentByID(users *models.Users, id int64) *models.Student {
	for _, e := range users.Eleves {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// FindTeacherByUsername looks a teacher up by exact username.
func FindTeacherByUsername(users *models.Users, username string) *models.Teacher {
	for _, p := range users.Profs {
		if p.Username == username {
			return p
		}
	}
	return nil
}

// FindAdminByID looks an admin up by its store-assigned id.
func FindAdminByID(users *models.Users, id int64) *models.Admin {
	for _, a := range users.Admins {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// FindAdminByUsername looks an admin up by exact username.
func FindAdminByUsername(users *models.Users, username string) *models.Admin {
	for _, a := range users.Admins {
		if a.Username == username {
			return a
		}
	}
	return nil
}

// Authenticate resolves credentials against the persisted collection for
// the given role. Usernames compare case-insensitively after trimming;
// passwords compare exactly. It returns the session snapshot on success.
func Authenticate(s *store.Store, role models.Role, username, password string) (*models.SessionUser, error) {
	users := LoadUsers(s)
	normalized := models.NormalizeUsername(username)

	switch role {
	case models.RoleAdmin:
		for _, a := range users.Admins {
			if models.NormalizeUsername(a.Username) == normalized && a.Password == password {
				return &models.SessionUser{ID: a.ID, Username: a.Username, Name: a.Name}, nil
			}
		}
	case models.RoleProf:
		for _, p := range users.Profs {
			if models.NormalizeUsername(p.Username) == normalized && p.Password == password {
				return &models.SessionUser{ID: p.ID, Username: p.Username, Name: p.Name, Classes: p.Classes}, nil
			}
		}
	case models.RoleEleve:
		for _, e := range users.Eleves {
			if models.NormalizeUsername(e.Username) == normalized && e.Password == password {
				return &models.SessionUser{ID: e.ID, Username: e.Username, Name: e.DisplayName(), Classe: e.Classe}, nil
			}
		}
	}
	return nil, ErrNotFound
}

// CreateStudent assigns a stable id, checks username uniqueness across all
// three role lists and persists the collection.
func CreateStudent(s *store.Store, eleve *models.Student) error {
	users := LoadUsers(s)
	if users.UsernameTaken(eleve.Username, 0) {
		return ErrUsernameTaken
	}
	id, err := s.NextID()
	if err != nil {
		return err
	}
	eleve.ID = id
	eleve.Name = eleve.Prenom
	eleve.Classe = NormalizeClasse(eleve.Classe)
	users.Eleves = append(users.Eleves, eleve)
	return SaveUsers(s, users)
}

// UpdateStudent overwrites the record with the matching id. An empty
// password or photo keeps the stored value.
func UpdateStudent(s *store.Store, id int64, updated *models.Student) error {
	users := LoadUsers(s)
	eleve := FindStudentByID(users, id)
	if eleve == nil {
		return ErrNotFound
	}
	if users.UsernameTaken(updated.Username, id) {
		return ErrUsernameTaken
	}
	eleve.Prenom = updated.Prenom
	eleve.Name = updated.Prenom
	eleve.Username = updated.Username
	if updated.Password != "" {
		eleve.Password = updated.Password
	}
	eleve.Classe = NormalizeClasse(updated.Classe)
	if updated.Photo != "" {
		eleve.Photo = updated.Photo
	}
	return SaveUsers(s, users)
}

// DeleteStudent removes the student and cascades to its grades.
func DeleteStudent(s *store.Store, id int64) error {
	users := LoadUsers(s)
	if FindStudentByID(users, id) == nil {
		return ErrNotFound
	}
	kept := users.Eleves[:0]
	for _, e := range users.Eleves {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	users.Eleves = kept
	if err := SaveUsers(s, users); err != nil {
		return err
	}

	notes := LoadGrades(s)
	filtered := notes[:0]
	for _, n := range notes {
		if n.EleveID != id {
			filtered = append(filtered, n)
		}
	}
	return SaveGrades(s, filtered)
}

// CreateTeacher assigns a stable id, checks username uniqueness and
// persists the collection. Class labels are normalized on the way in.
func CreateTeacher(s *store.Store, prof *models.Teacher) error {
	users := LoadUsers(s)
	if users.UsernameTaken(prof.Username, 0) {
		return ErrUsernameTaken
	}
	id, err := s.NextID()
	if err != nil {
		return err
	}
	prof.ID = id
	prof.Classes = normalizeClasses(prof.Classes)
	users.Profs = append(users.Profs, prof)
	return SaveUsers(s, users)
}

// UpdateTeacher overwrites the record with the matching id. An empty
// password keeps the stored value.
func UpdateTeacher(s *store.Store, id int64, updated *models.Teacher) error {
	users := LoadUsers(s)
	var prof *models.Teacher
	for _, p := range users.Profs {
		if p.ID == id {
			prof = p
			break
		}
	}
	if prof == nil {
		return ErrNotFound
	}
	if users.UsernameTaken(updated.Username, id) {
		return ErrUsernameTaken
	}
	prof.Name = updated.Name
	prof.Username = updated.Username
	if updated.Password != "" {
		prof.Password = updated.Password
	}
	prof.Classes = normalizeClasses(updated.Classes)
	return SaveUsers(s, users)
}

// DeleteTeacher removes the teacher and cascades to every assignment and
// grade whose profId matches its username.
func DeleteTeacher(s *store.Store, id int64) error {
	users := LoadUsers(s)
	var prof *models.Teacher
	kept := users.Profs[:0]
	for _, p := range users.Profs {
		if p.ID == id {
			prof = p
		} else {
			kept = append(kept, p)
		}
	}
	if prof == nil {
		return ErrNotFound
	}
	users.Profs = kept
	if err := SaveUsers(s, users); err != nil {
		return err
	}

	devoirs := LoadAssignments(s)
	keptDevoirs := devoirs[:0]
	for _, d := range devoirs {
		if d.ProfID != prof.Username {
			keptDevoirs = append(keptDevoirs, d)
		}
	}
	if err := SaveAssignments(s, keptDevoirs); err != nil {
		return err
	}

	notes := LoadGrades(s)
	keptNotes := notes[:0]
	for _, n := range notes {
		if n.ProfID != prof.Username {
			keptNotes = append(keptNotes, n)
		}
	}
	return SaveGrades(s, keptNotes)
}

// CreateAdmin assigns a stable id, checks username uniqueness and persists
// the collection.
func CreateAdmin(s *store.Store, admin *models.Admin) error {
	users := LoadUsers(s)
	if users.UsernameTaken(admin.Username, 0) {
		return ErrUsernameTaken
	}
	id, err := s.NextID()
	if err != nil {
		return err
	}
	admin.ID = id
	users.Admins = append(users.Admins, admin)
	return SaveUsers(s, users)
}

// UpdateAdmin overwrites the record with the matching id. An empty password
// keeps the stored value.
func UpdateAdmin(s *store.Store, id int64, updated *models.Admin) error {
	users := LoadUsers(s)
	var admin *models.Admin
	for _, a := range users.Admins {
		if a.ID == id {
			admin = a
			break
		}
	}
	if admin == nil {
		return ErrNotFound
	}
	if users.UsernameTaken(updated.Username, id) {
		return ErrUsernameTaken
	}
	admin.Name = updated.Name
	admin.Username = updated.Username
	if updated.Password != "" {
		admin.Password = updated.Password
	}
	return SaveUsers(s, users)
}

// DeleteAdmin removes the admin unless it is the last one remaining. A
// stale id is reported as not found before the last-admin guard applies.
func DeleteAdmin(s *store.Store, id int64) error {
	users := LoadUsers(s)
	if FindAdminByID(users, id) == nil {
		return ErrNotFound
	}
	if len(users.Admins) <= 1 {
		return ErrLastAdmin
	}
	kept := users.Admins[:0]
	for _, a := range users.Admins {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	users.Admins = kept
	return SaveUsers(s, users)
}
