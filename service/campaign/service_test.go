package campaign

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/seedinglab/seedops/model"
	"github.com/seedinglab/seedops/seeding"
)

type fakeProvider struct {
}

func (p *fakeProvider) Transact(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (p *fakeProvider) Readonly(ctx context.Context) context.Context {
	return ctx
}

type fakeInfluencerRepo struct {
	nextID int64
	rows   map[int64]model.SeedingInfluencer

	failUpdateID int64
}

func newFakeInfluencerRepo() *fakeInfluencerRepo {
	return &fakeInfluencerRepo{
		nextID: 1,
		rows:   map[int64]model.SeedingInfluencer{},
	}
}

func (r *fakeInfluencerRepo) Insert(_ context.Context, inf model.SeedingInfluencer) (int64, error) {
	inf.ID = r.nextID
	r.nextID++
	r.rows[inf.ID] = inf
	return inf.ID, nil
}

func (r *fakeInfluencerRepo) Update(_ context.Context, inf model.SeedingInfluencer) error {
	if r.failUpdateID != 0 && inf.ID == r.failUpdateID {
		return errors.New("update failed")
	}
	r.rows[inf.ID] = inf
	return nil
}

func (r *fakeInfluencerRepo) Get(_ context.Context, id int64) (model.SeedingInfluencer, error) {
	inf, ok := r.rows[id]
	if !ok {
		return model.SeedingInfluencer{}, sql.ErrNoRows
	}
	return inf, nil
}

func (r *fakeInfluencerRepo) GetForUpdate(ctx context.Context, id int64) (model.SeedingInfluencer, error) {
	return r.Get(ctx, id)
}

func (r *fakeInfluencerRepo) ListByProject(_ context.Context, projectID int64) ([]model.SeedingInfluencer, error) {
	var ids []int64
	for id, inf := range r.rows {
		if inf.ProjectID == projectID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var result []model.SeedingInfluencer
	for _, id := range ids {
		result = append(result, r.rows[id])
	}
	return result, nil
}

func (r *fakeInfluencerRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

func (r *fakeInfluencerRepo) DeleteByProject(_ context.Context, projectID int64) error {
	for id, inf := range r.rows {
		if inf.ProjectID == projectID {
			delete(r.rows, id)
		}
	}
	return nil
}

type fakeProjectRepo struct {
	nextID int64
	rows   map[int64]model.SeedingProject
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{nextID: 1, rows: map[int64]model.SeedingProject{}}
}

func (r *fakeProjectRepo) Insert(_ context.Context, p model.SeedingProject) (int64, error) {
	p.ID = r.nextID
	r.nextID++
	r.rows[p.ID] = p
	return p.ID, nil
}

func (r *fakeProjectRepo) Update(_ context.Context, p model.SeedingProject) error {
	r.rows[p.ID] = p
	return nil
}

func (r *fakeProjectRepo) Get(_ context.Context, id int64) (model.SeedingProject, error) {
	p, ok := r.rows[id]
	if !ok {
		return model.SeedingProject{}, sql.ErrNoRows
	}
	return p, nil
}

func (r *fakeProjectRepo) GetForUpdate(ctx context.Context, id int64) (model.SeedingProject, error) {
	return r.Get(ctx, id)
}

func (r *fakeProjectRepo) List(_ context.Context) ([]model.SeedingProject, error) {
	var result []model.SeedingProject
	for _, p := range r.rows {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeProjectRepo) Delete(_ context.Context, id int64) error {
	delete(r.rows, id)
	return nil
}

type serviceTest struct {
	service        *Service
	influencerRepo *fakeInfluencerRepo
	projectRepo    *fakeProjectRepo
}

func newServiceTest() *serviceTest {
	influencerRepo := newFakeInfluencerRepo()
	projectRepo := newFakeProjectRepo()
	return &serviceTest{
		service:        NewService(&fakeProvider{}, projectRepo, influencerRepo, zap.NewNop()),
		influencerRepo: influencerRepo,
		projectRepo:    projectRepo,
	}
}

func (st *serviceTest) addInfluencer(t *testing.T, projectID int64, accountID string) model.SeedingInfluencer {
	inf, err := st.service.AddInfluencer(context.Background(), model.SeedingInfluencer{
		ProjectID:   projectID,
		AccountID:   accountID,
		SeedingType: seeding.SeedingTypeFree,
		Status:      seeding.StageListed,
	})
	require.NoError(t, err)
	return inf
}

func TestAddInfluencer(t *testing.T) {
	st := newServiceTest()

	inf := st.addInfluencer(t, 7, "@Jane_Doe")

	assert.Equal(t, int64(1), inf.ID)
	assert.Equal(t, "jane_doe", inf.AccountID)
	assert.Equal(t, seeding.StageListed, inf.Status)
	assert.Equal(t, true, inf.ListedAt.Valid)
}

func TestAddInfluencer_PaidWithoutFee(t *testing.T) {
	st := newServiceTest()

	_, err := st.service.AddInfluencer(context.Background(), model.SeedingInfluencer{
		ProjectID:   7,
		AccountID:   "jane",
		SeedingType: seeding.SeedingTypePaid,
	})
	assert.Equal(t, seeding.ErrFeeRequired, err)
}

func TestUpdateStatus_StampsOnce(t *testing.T) {
	st := newServiceTest()
	ctx := context.Background()
	inf := st.addInfluencer(t, 7, "jane")

	err := st.service.UpdateStatus(ctx, inf.ID, seeding.StageContacted, "")
	require.NoError(t, err)

	got, err := st.service.GetInfluencer(ctx, inf.ID)
	require.NoError(t, err)
	assert.Equal(t, seeding.StageContacted, got.Status)
	assert.Equal(t, true, got.ContactedAt.Valid)
	firstStamp := got.ContactedAt.Time

	// backward then forward again: the stamp must not move
	err = st.service.UpdateStatus(ctx, inf.ID, seeding.StageListed, "")
	require.NoError(t, err)
	err = st.service.UpdateStatus(ctx, inf.ID, seeding.StageContacted, "")
	require.NoError(t, err)

	got, err = st.service.GetInfluencer(ctx, inf.ID)
	require.NoError(t, err)
	assert.Equal(t, firstStamp, got.ContactedAt.Time)
}

func TestUpdateStatus_Reject(t *testing.T) {
	st := newServiceTest()
	ctx := context.Background()
	inf := st.addInfluencer(t, 7, "jane")

	err := st.service.UpdateStatus(ctx, inf.ID, seeding.StageRejected, "")
	assert.Equal(t, seeding.ErrReasonRequired, err)

	err = st.service.UpdateStatus(ctx, inf.ID, seeding.StageRejected, "brand mismatch")
	require.NoError(t, err)

	got, err := st.service.GetInfluencer(ctx, inf.ID)
	require.NoError(t, err)
	assert.Equal(t, seeding.StageRejected, got.Status)
	assert.Equal(t, true, got.RejectedAt.Valid)
	assert.Equal(t, "brand mismatch", got.RejectionReason.String)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	st := newServiceTest()

	err := st.service.UpdateStatus(context.Background(), 999, seeding.StageContacted, "")
	assert.Equal(t, ErrInfluencerNotFound, err)
}

func TestBulkUpdateStatus_PartialFailure(t *testing.T) {
	st := newServiceTest()
	ctx := context.Background()

	first := st.addInfluencer(t, 7, "one")
	second := st.addInfluencer(t, 7, "two")
	third := st.addInfluencer(t, 7, "three")
	st.influencerRepo.failUpdateID = second.ID

	result := st.service.BulkUpdateStatus(ctx,
		[]int64{first.ID, second.ID, third.ID}, seeding.StageContacted, "")

	assert.Equal(t, 2, result.Updated)
	require.Equal(t, 1, len(result.Failed))
	assert.Equal(t, second.ID, result.Failed[0].ID)

	// no rollback across the batch
	got, _ := st.service.GetInfluencer(ctx, first.ID)
	assert.Equal(t, seeding.StageContacted, got.Status)
	got, _ = st.service.GetInfluencer(ctx, second.ID)
	assert.Equal(t, seeding.StageListed, got.Status)
}

func TestFunnelReport(t *testing.T) {
	st := newServiceTest()
	ctx := context.Background()

	stages := []seeding.Stage{
		seeding.StageListed, seeding.StageContacted, seeding.StageAccepted,
		seeding.StageRejected, seeding.StageShipped,
	}
	for i, stage := range stages {
		inf := st.addInfluencer(t, 7, string(rune('a'+i)))
		if stage == seeding.StageListed {
			continue
		}
		reason := ""
		if stage == seeding.StageRejected {
			reason = "busy"
		}
		require.NoError(t, st.service.UpdateStatus(ctx, inf.ID, stage, reason))
	}

	report, err := st.service.FunnelReport(ctx, 7)
	require.NoError(t, err)

	byStage := map[seeding.Stage]int{}
	for _, sc := range report.Stages {
		byStage[sc.Stage] = sc.Count
	}

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 4, byStage[seeding.StageListed])
	assert.Equal(t, 3, byStage[seeding.StageContacted])
	assert.Equal(t, 2, byStage[seeding.StageAccepted])
	assert.Equal(t, 1, byStage[seeding.StageShipped])
	assert.Equal(t, 1, report.Rejected)
	assert.Equal(t, 2, report.Accepted)
	assert.Equal(t, true, report.Consistent)
}

func TestImportTracking(t *testing.T) {
	st := newServiceTest()
	ctx := context.Background()

	first := st.addInfluencer(t, 7, "abc")
	second := st.addInfluencer(t, 7, "def")

	report, err := st.service.ImportTracking(ctx, 7, "@abc, 1234567890")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Valid)
	assert.Equal(t, 0, report.Invalid)
	assert.Equal(t, 1, report.Updated)

	got, _ := st.service.GetInfluencer(ctx, first.ID)
	assert.Equal(t, "1234567890", got.TrackingNumber)

	// positional single-column paste follows row order
	report, err = st.service.ImportTracking(ctx, 7, "1111111111\n2222222222")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Updated)

	got, _ = st.service.GetInfluencer(ctx, first.ID)
	assert.Equal(t, "1111111111", got.TrackingNumber)
	got, _ = st.service.GetInfluencer(ctx, second.ID)
	assert.Equal(t, "2222222222", got.TrackingNumber)
}

func TestDeleteProject_CascadesInfluencers(t *testing.T) {
	st := newServiceTest()
	ctx := context.Background()

	project, err := st.service.CreateProject(ctx, model.SeedingProject{Name: "spring", Brand: "lumiere"})
	require.NoError(t, err)
	assert.Equal(t, model.ProjectStatusPlanning, project.Status)

	inf := st.addInfluencer(t, project.ID, "jane")

	require.NoError(t, st.service.DeleteProject(ctx, project.ID))

	_, err = st.service.GetProject(ctx, project.ID)
	assert.Equal(t, ErrProjectNotFound, err)
	_, err = st.service.GetInfluencer(ctx, inf.ID)
	assert.Equal(t, ErrInfluencerNotFound, err)
}
