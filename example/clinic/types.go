package clinic

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/spring-petclinic/petclinic-graphql/types"
)

// =============================================================================
// Domain Models + Server
// =============================================================================

// PetType is the kind of animal, e.g. cat or dog.
type PetType struct {
	ID   int
	Name string
}

// Owner owns one or more pets.
type Owner struct {
	ID        int
	FirstName string
	LastName  string
	Address   string
	City      string
	Telephone string
}

// Pet belongs to exactly one owner. BirthDate is exposed as a Date.
type Pet struct {
	ID        int
	Name      string
	BirthDate types.CalendarDate
	TypeID    int
	OwnerID   int
}

// Visit records a visit of a pet on a Date.
type Visit struct {
	ID          int
	PetID       int
	Date        types.CalendarDate
	Description string
}

// Specialty is a field a vet is trained in.
type Specialty struct {
	ID   int
	Name string
}

// Vet works at the clinic.
type Vet struct {
	ID          int
	FirstName   string
	LastName    string
	Specialties []*Specialty
}

var (
	errOwnerNotFound   = errors.New("owner not found")
	errPetNotFound     = errors.New("pet not found")
	errPetTypeNotFound = errors.New("pet type not found")
)

// Server is the in-memory clinic store used by the resolvers. It is safe for
// concurrent use.
type Server struct {
	mu sync.RWMutex

	owners   map[int]*Owner
	pets     map[int]*Pet
	petTypes map[int]*PetType
	visits   map[int]*Visit
	vets     []*Vet

	nextPetID   int
	nextVisitID int
}

// NewServer creates Server w/ seed data.
func NewServer() *Server {
	d := types.MustCalendarDate

	radiology := &Specialty{ID: 1, Name: "radiology"}
	surgery := &Specialty{ID: 2, Name: "surgery"}
	dentistry := &Specialty{ID: 3, Name: "dentistry"}

	s := &Server{
		owners: map[int]*Owner{
			1: {ID: 1, FirstName: "George", LastName: "Franklin", Address: "110 W. Liberty St.", City: "Madison", Telephone: "6085551023"},
			2: {ID: 2, FirstName: "Betty", LastName: "Davis", Address: "638 Cardinal Ave.", City: "Sun Prairie", Telephone: "6085551749"},
			3: {ID: 3, FirstName: "Eduardo", LastName: "Rodriquez", Address: "2693 Commerce St.", City: "McFarland", Telephone: "6085558763"},
		},
		petTypes: map[int]*PetType{
			1: {ID: 1, Name: "cat"},
			2: {ID: 2, Name: "dog"},
			3: {ID: 3, Name: "lizard"},
			4: {ID: 4, Name: "snake"},
			5: {ID: 5, Name: "bird"},
			6: {ID: 6, Name: "hamster"},
		},
		pets: map[int]*Pet{
			1: {ID: 1, Name: "Leo", BirthDate: d(2010, time.September, 7), TypeID: 1, OwnerID: 1},
			2: {ID: 2, Name: "Basil", BirthDate: d(2012, time.August, 6), TypeID: 6, OwnerID: 2},
			3: {ID: 3, Name: "Rosy", BirthDate: d(2011, time.April, 17), TypeID: 2, OwnerID: 3},
			4: {ID: 4, Name: "Jewel", BirthDate: d(2010, time.March, 7), TypeID: 2, OwnerID: 3},
		},
		visits: map[int]*Visit{
			1: {ID: 1, PetID: 1, Date: d(2013, time.January, 1), Description: "rabies shot"},
			2: {ID: 2, PetID: 4, Date: d(2013, time.January, 2), Description: "neutered"},
		},
		vets: []*Vet{
			{ID: 1, FirstName: "James", LastName: "Carter", Specialties: []*Specialty{}},
			{ID: 2, FirstName: "Helen", LastName: "Leary", Specialties: []*Specialty{radiology}},
			{ID: 3, FirstName: "Linda", LastName: "Douglas", Specialties: []*Specialty{surgery, dentistry}},
		},
	}
	s.nextPetID = len(s.pets) + 1
	s.nextVisitID = len(s.visits) + 1
	return s
}

// Owners returns all owners ordered by ID.
func (s *Server) Owners() []*Owner {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.owners, func(o *Owner) int { return o.ID })
}

// Owner returns the owner with the given ID.
func (s *Server) Owner(id int) (*Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.owners[id]; ok {
		return o, nil
	}
	return nil, errors.Wrapf(errOwnerNotFound, "id %d", id)
}

// Pets returns all pets ordered by ID.
func (s *Server) Pets() []*Pet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.pets, func(p *Pet) int { return p.ID })
}

// Pet returns the pet with the given ID.
func (s *Server) Pet(id int) (*Pet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.pets[id]; ok {
		return p, nil
	}
	return nil, errors.Wrapf(errPetNotFound, "id %d", id)
}

// PetsOf returns the pets of an owner ordered by ID.
func (s *Server) PetsOf(ownerID int) []*Pet {
	out := []*Pet{}
	for _, p := range s.Pets() {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

// PetTypes returns all pet types ordered by ID.
func (s *Server) PetTypes() []*PetType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedByID(s.petTypes, func(t *PetType) int { return t.ID })
}

// PetType returns the pet type with the given ID.
func (s *Server) PetType(id int) (*PetType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t, ok := s.petTypes[id]; ok {
		return t, nil
	}
	return nil, errors.Wrapf(errPetTypeNotFound, "id %d", id)
}

// VisitsOf returns the visits of a pet, oldest first.
func (s *Server) VisitsOf(petID int) []*Visit {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*Visit{}
	for _, v := range s.visits {
		if v.PetID == petID {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Vets returns all vets.
func (s *Server) Vets() []*Vet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*Vet(nil), s.vets...)
}

// AddVisit records a visit for an existing pet.
func (s *Server) AddVisit(petID int, date types.CalendarDate, description string) (*Visit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pets[petID]; !ok {
		return nil, errors.Wrapf(errPetNotFound, "id %d", petID)
	}

	v := &Visit{ID: s.nextVisitID, PetID: petID, Date: date, Description: description}
	s.visits[v.ID] = v
	s.nextVisitID++
	return v, nil
}

// AddPet registers a new pet for an existing owner.
func (s *Server) AddPet(ownerID, typeID int, name string, birthDate types.CalendarDate) (*Pet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[ownerID]; !ok {
		return nil, errors.Wrapf(errOwnerNotFound, "id %d", ownerID)
	}
	if _, ok := s.petTypes[typeID]; !ok {
		return nil, errors.Wrapf(errPetTypeNotFound, "id %d", typeID)
	}
	if name == "" {
		return nil, errors.New("pet name must not be empty")
	}

	p := &Pet{ID: s.nextPetID, Name: name, BirthDate: birthDate, TypeID: typeID, OwnerID: ownerID}
	s.pets[p.ID] = p
	s.nextPetID++
	return p, nil
}

func sortedByID[T any](m map[int]T, id func(T) int) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return id(out[i]) < id(out[j]) })
	return out
}
