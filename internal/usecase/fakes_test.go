package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/studylink/internal/model"
	"github.com/fadilmartias/studylink/internal/repository"
	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// memStore backs the fake repositories. Not safe for concurrent use.
type memStore struct {
	users      map[uuid.UUID]*model.User
	tags       map[string]model.Tag
	groups     map[uuid.UUID]*model.StudyGroup
	groupOrder []uuid.UUID
	members    []model.StudyMember
	apps       map[uuid.UUID]*model.Application
	appOrder   []uuid.UUID
	comments   []model.Comment
	interests  []model.Interest
	embeddings map[uuid.UUID]pgvector.Vector
	clock      time.Time
	lastFilter repository.StudyGroupFilter
}

func newMemStore() *memStore {
	return &memStore{
		users:      map[uuid.UUID]*model.User{},
		tags:       map[string]model.Tag{},
		groups:     map[uuid.UUID]*model.StudyGroup{},
		apps:       map[uuid.UUID]*model.Application{},
		embeddings: map[uuid.UUID]pgvector.Vector{},
		clock:      time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) tick() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

func (s *memStore) hydrate(g *model.StudyGroup) model.StudyGroup {
	out := *g
	out.Members = nil
	for _, m := range s.members {
		if m.StudyGroupID == g.ID {
			out.Members = append(out.Members, m)
		}
	}
	if u, ok := s.users[g.CreatorID]; ok {
		out.Creator = *u
	}
	return out
}

type fakeUserRepo struct{ s *memStore }

func (r fakeUserRepo) CreateUser(u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = r.s.tick()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r fakeUserRepo) UpdateUser(u *model.User) error {
	stored, ok := r.s.users[u.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	tags := stored.Tags
	cp := *u
	cp.Tags = tags
	r.s.users[u.ID] = &cp
	return nil
}

func (r fakeUserRepo) ReplaceTags(u *model.User, tags []model.Tag) error {
	r.s.users[u.ID].Tags = tags
	u.Tags = tags
	return nil
}

func (r fakeUserRepo) FindUserByID(id uuid.UUID) (*model.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r fakeUserRepo) FindUserByEmail(email string) (*model.User, error) {
	for _, u := range r.s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, err := r.FindUserByEmail(email)
	return err == nil, nil
}

func (r fakeUserRepo) ExistsByNickname(nickname string) (bool, error) {
	for _, u := range r.s.users {
		if u.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

type fakeTagRepo struct{ s *memStore }

func (r fakeTagRepo) FindOrCreateTags(names []string) ([]model.Tag, error) {
	out := make([]model.Tag, 0, len(names))
	for _, n := range names {
		t, ok := r.s.tags[n]
		if !ok {
			t = model.Tag{ID: uuid.New(), Name: n}
			r.s.tags[n] = t
		}
		out = append(out, t)
	}
	return out, nil
}

type fakeGroupRepo struct{ s *memStore }

func (r fakeGroupRepo) CreateGroup(g *model.StudyGroup, leader *model.StudyMember) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.CreatedAt = r.s.tick()
	cp := *g
	cp.Members = nil
	r.s.groups[g.ID] = &cp
	r.s.groupOrder = append(r.s.groupOrder, g.ID)
	if leader != nil {
		leader.ID = uuid.New()
		leader.StudyGroupID = g.ID
		r.s.members = append(r.s.members, *leader)
	}
	return nil
}

func (r fakeGroupRepo) UpdateGroup(g *model.StudyGroup) error {
	if _, ok := r.s.groups[g.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *g
	cp.Members = nil
	r.s.groups[g.ID] = &cp
	return nil
}

func (r fakeGroupRepo) ReplaceTags(g *model.StudyGroup, tags []model.Tag) error {
	r.s.groups[g.ID].Tags = tags
	g.Tags = tags
	return nil
}

func (r fakeGroupRepo) DeleteGroup(id uuid.UUID) error {
	delete(r.s.groups, id)
	return nil
}

func (r fakeGroupRepo) FindGroupByID(id uuid.UUID) (*model.StudyGroup, error) {
	g, ok := r.s.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := r.s.hydrate(g)
	return &out, nil
}

func (r fakeGroupRepo) IncrementViewCount(id uuid.UUID) error {
	r.s.groups[id].ViewCount++
	return nil
}

func (r fakeGroupRepo) all() []model.StudyGroup {
	var out []model.StudyGroup
	for _, id := range r.s.groupOrder {
		if g, ok := r.s.groups[id]; ok {
			out = append(out, r.s.hydrate(g))
		}
	}
	return out
}

func (r fakeGroupRepo) FindGroups(f repository.StudyGroupFilter) ([]model.StudyGroup, int64, error) {
	r.s.lastFilter = f
	all := r.all()
	return all, int64(len(all)), nil
}

func (r fakeGroupRepo) FindAllWithTags() ([]model.StudyGroup, error) {
	return r.all(), nil
}

func (r fakeGroupRepo) FindGroupsByCreator(userID uuid.UUID) ([]model.StudyGroup, error) {
	var out []model.StudyGroup
	for _, g := range r.all() {
		if g.CreatorID == userID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r fakeGroupRepo) UpdateEmbedding(id uuid.UUID, v pgvector.Vector) error {
	r.s.embeddings[id] = v
	return nil
}

func (r fakeGroupRepo) SearchByEmbedding(v pgvector.Vector, topK int) ([]model.StudyGroup, error) {
	var out []model.StudyGroup
	for _, g := range r.all() {
		if _, ok := r.s.embeddings[g.ID]; ok && len(out) < topK {
			out = append(out, g)
		}
	}
	return out, nil
}

type fakeMemberRepo struct{ s *memStore }

func (r fakeMemberRepo) IsMember(userID, groupID uuid.UUID) (bool, error) {
	for _, m := range r.s.members {
		if m.UserID == userID && m.StudyGroupID == groupID {
			return true, nil
		}
	}
	return false, nil
}

func (r fakeMemberRepo) FindGroupIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, m := range r.s.members {
		if m.UserID == userID {
			ids = append(ids, m.StudyGroupID)
		}
	}
	return ids, nil
}

func (r fakeMemberRepo) FindGroupsByMember(userID uuid.UUID) ([]model.StudyGroup, error) {
	ids, _ := r.FindGroupIDsByUser(userID)
	var out []model.StudyGroup
	for _, id := range ids {
		if g, ok := r.s.groups[id]; ok {
			out = append(out, r.s.hydrate(g))
		}
	}
	return out, nil
}

type fakeApplicationRepo struct{ s *memStore }

func (r fakeApplicationRepo) CreateApplication(a *model.Application) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = r.s.tick()
	cp := *a
	r.s.apps[a.ID] = &cp
	r.s.appOrder = append(r.s.appOrder, a.ID)
	return nil
}

func (r fakeApplicationRepo) UpdateApplication(a *model.Application) error {
	cp := *a
	r.s.apps[a.ID] = &cp
	return nil
}

func (r fakeApplicationRepo) AcceptApplication(a *model.Application, m *model.StudyMember) error {
	if err := r.UpdateApplication(a); err != nil {
		return err
	}
	m.ID = uuid.New()
	r.s.members = append(r.s.members, *m)
	return nil
}

func (r fakeApplicationRepo) FindApplicationByID(id uuid.UUID) (*model.Application, error) {
	a, ok := r.s.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	if g, ok := r.s.groups[a.StudyGroupID]; ok {
		cp.StudyGroup = r.s.hydrate(g)
	}
	return &cp, nil
}

func (r fakeApplicationRepo) filter(keep func(*model.Application) bool) []model.Application {
	var out []model.Application
	for _, id := range r.s.appOrder {
		if a := r.s.apps[id]; keep(a) {
			out = append(out, *a)
		}
	}
	return out
}

func (r fakeApplicationRepo) FindApplicationsByGroup(groupID uuid.UUID) ([]model.Application, error) {
	return r.filter(func(a *model.Application) bool { return a.StudyGroupID == groupID }), nil
}

func (r fakeApplicationRepo) FindApplicationsByApplicant(userID uuid.UUID) ([]model.Application, error) {
	return r.filter(func(a *model.Application) bool { return a.ApplicantID == userID }), nil
}

func (r fakeApplicationRepo) HasPending(userID, groupID uuid.UUID) (bool, error) {
	pending := r.filter(func(a *model.Application) bool {
		return a.ApplicantID == userID && a.StudyGroupID == groupID && a.Status == model.ApplicationPending
	})
	return len(pending) > 0, nil
}

type fakeCommentRepo struct{ s *memStore }

func (r fakeCommentRepo) CreateComment(c *model.Comment) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = r.s.tick()
	r.s.comments = append(r.s.comments, *c)
	return nil
}

func (r fakeCommentRepo) FindCommentByID(id uuid.UUID) (*model.Comment, error) {
	for _, c := range r.s.comments {
		if c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeCommentRepo) FindCommentsByGroup(groupID uuid.UUID) ([]model.Comment, error) {
	var out []model.Comment
	for _, c := range r.s.comments {
		if c.StudyGroupID == groupID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r fakeCommentRepo) DeleteComment(id uuid.UUID) error {
	doomed := map[uuid.UUID]bool{id: true}
	for changed := true; changed; {
		changed = false
		for _, c := range r.s.comments {
			if c.ParentID != nil && doomed[*c.ParentID] && !doomed[c.ID] {
				doomed[c.ID] = true
				changed = true
			}
		}
	}
	kept := r.s.comments[:0]
	for _, c := range r.s.comments {
		if !doomed[c.ID] {
			kept = append(kept, c)
		}
	}
	r.s.comments = kept
	return nil
}

type fakeInterestRepo struct{ s *memStore }

func (r fakeInterestRepo) FindInterest(userID, groupID uuid.UUID) (*model.Interest, error) {
	for _, i := range r.s.interests {
		if i.UserID == userID && i.StudyGroupID == groupID {
			cp := i
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeInterestRepo) CreateInterest(i *model.Interest) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.CreatedAt = r.s.tick()
	r.s.interests = append(r.s.interests, *i)
	return nil
}

func (r fakeInterestRepo) DeleteInterest(id uuid.UUID) error {
	kept := r.s.interests[:0]
	for _, i := range r.s.interests {
		if i.ID != id {
			kept = append(kept, i)
		}
	}
	r.s.interests = kept
	return nil
}

func (r fakeInterestRepo) FindInterestsByUser(userID uuid.UUID) ([]model.Interest, error) {
	var out []model.Interest
	for idx := len(r.s.interests) - 1; idx >= 0; idx-- {
		i := r.s.interests[idx]
		if i.UserID != userID {
			continue
		}
		if g, ok := r.s.groups[i.StudyGroupID]; ok {
			i.StudyGroup = r.s.hydrate(g)
		}
		out = append(out, i)
	}
	return out, nil
}

type fakeEmbedder struct {
	values []float32
	err    error
	inputs []string
}

func (e *fakeEmbedder) GenerateEmbedding(_ context.Context, text string) ([]float32, error) {
	e.inputs = append(e.inputs, text)
	if e.err != nil {
		return nil, e.err
	}
	return e.values, nil
}

// seedUser stores a user directly and returns it.
func seedUser(s *memStore, nickname string) *model.User {
	u := &model.User{Email: nickname + "@example.com", Nickname: nickname}
	_ = fakeUserRepo{s}.CreateUser(u)
	return u
}

// seedGroup stores a group with its creator as leader.
func seedGroup(s *memStore, creator uuid.UUID, g model.StudyGroup) *model.StudyGroup {
	g.CreatorID = creator
	_ = fakeGroupRepo{s}.CreateGroup(&g, &model.StudyMember{UserID: creator, Role: model.RoleLeader})
	return &g
}

// The duplicate* repos lose an insert race: the row landed between the
// existence check and the insert.
type duplicateUserRepo struct{ fakeUserRepo }

func (duplicateUserRepo) CreateUser(*model.User) error {
	return fmt.Errorf("%w: idx_users_email", repository.ErrDuplicate)
}

type duplicateInterestRepo struct{ fakeInterestRepo }

func (duplicateInterestRepo) CreateInterest(*model.Interest) error {
	return fmt.Errorf("%w: idx_interest_user_group", repository.ErrDuplicate)
}

type duplicateApplicationRepo struct{ fakeApplicationRepo }

func (duplicateApplicationRepo) AcceptApplication(*model.Application, *model.StudyMember) error {
	return fmt.Errorf("%w: idx_member_user_group", repository.ErrDuplicate)
}
