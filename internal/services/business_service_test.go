package services

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"bizsetu/internal/caching"
	"bizsetu/internal/common"
	"bizsetu/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type MockBusinessRepository struct {
	mock.Mock
}

func (m *MockBusinessRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessDraft), args.Error(1)
}

func (m *MockBusinessRepository) Upsert(ctx context.Context, draft *models.BusinessDraft) error {
	args := m.Called(ctx, draft)
	return args.Error(0)
}

func (m *MockBusinessRepository) SetKYCVideo(ctx context.Context, ownerID uuid.UUID, video *models.StoredRef) error {
	args := m.Called(ctx, ownerID, video)
	return args.Error(0)
}

func (m *MockBusinessRepository) CountByStatus(ctx context.Context, statuses []string) (int, error) {
	args := m.Called(ctx, statuses)
	return args.Int(0), args.Error(1)
}

type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BusinessLocation), args.Error(1)
}

func (m *MockLocationRepository) Apply(ctx context.Context, plan *models.BatchPlan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

type MockAuditLogsRepository struct {
	mock.Mock
}

func (m *MockAuditLogsRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditLogsRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*models.AuditLog, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.AuditLog), args.Error(1)
}

type MockLocationService struct {
	mock.Mock
}

func (m *MockLocationService) Reconcile(ctx context.Context, draft *models.BusinessDraft, existing []*models.BusinessLocation,
	incoming []models.LocationInput, primaryImage *models.StoredRef, primaryImageLocID string) error {
	args := m.Called(ctx, draft, existing, incoming, primaryImage, primaryImageLocID)
	return args.Error(0)
}

func (m *MockLocationService) List(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BusinessLocation), args.Error(1)
}

type MockBrandService struct {
	mock.Mock
}

func (m *MockBrandService) ListActive(ctx context.Context, kind string) ([]*models.Brand, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Brand), args.Error(1)
}

func (m *MockBrandService) EnsureActive(ctx context.Context, ids []uuid.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *MockBrandService) RefreshCatalogCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Ingest(ctx context.Context, file *multipart.FileHeader, kind string) (*models.StoredRef, error) {
	args := m.Called(ctx, file, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StoredRef), args.Error(1)
}

func (m *MockMediaService) Discard(ctx context.Context, ref *models.StoredRef) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetBusinessDraft(ctx context.Context, ownerID uuid.UUID) (*models.BusinessDraft, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BusinessDraft), args.Error(1)
}

func (m *MockCacheService) SetBusinessDraft(ctx context.Context, draft *models.BusinessDraft, ttl time.Duration) error {
	args := m.Called(ctx, draft, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteBusinessDraft(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockCacheService) GetLocations(ctx context.Context, ownerID uuid.UUID) ([]*models.BusinessLocation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.BusinessLocation), args.Error(1)
}

func (m *MockCacheService) SetLocations(ctx context.Context, ownerID uuid.UUID, locations []*models.BusinessLocation, ttl time.Duration) error {
	args := m.Called(ctx, ownerID, locations, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteLocations(ctx context.Context, ownerID uuid.UUID) error {
	args := m.Called(ctx, ownerID)
	return args.Error(0)
}

func (m *MockCacheService) GetBrands(ctx context.Context, kind string) ([]*models.Brand, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Brand), args.Error(1)
}

func (m *MockCacheService) SetBrands(ctx context.Context, kind string, brands []*models.Brand, ttl time.Duration) error {
	args := m.Called(ctx, kind, brands, ttl)
	return args.Error(0)
}

func (m *MockCacheService) DeleteBrands(ctx context.Context, kind string) error {
	args := m.Called(ctx, kind)
	return args.Error(0)
}

var _ caching.CacheService = (*MockCacheService)(nil)

type BusinessServiceTestSuite struct {
	suite.Suite
	businessRepo *MockBusinessRepository
	locationRepo *MockLocationRepository
	auditRepo    *MockAuditLogsRepository
	locationSvc  *MockLocationService
	brandSvc     *MockBrandService
	mediaSvc     *MockMediaService
	cacheSvc     *MockCacheService
	service      BusinessService
	ownerID      uuid.UUID
	ctx          context.Context
}

func (suite *BusinessServiceTestSuite) SetupTest() {
	suite.businessRepo = &MockBusinessRepository{}
	suite.locationRepo = &MockLocationRepository{}
	suite.auditRepo = &MockAuditLogsRepository{}
	suite.locationSvc = &MockLocationService{}
	suite.brandSvc = &MockBrandService{}
	suite.mediaSvc = &MockMediaService{}
	suite.cacheSvc = &MockCacheService{}
	suite.service = NewBusinessService(suite.businessRepo, suite.locationRepo, suite.auditRepo,
		suite.locationSvc, suite.brandSvc, suite.mediaSvc, suite.cacheSvc)
	suite.ownerID = uuid.New()
	suite.ctx = context.Background()
}

func (suite *BusinessServiceTestSuite) TearDownTest() {
	suite.businessRepo.AssertExpectations(suite.T())
	suite.locationRepo.AssertExpectations(suite.T())
	suite.locationSvc.AssertExpectations(suite.T())
	suite.brandSvc.AssertExpectations(suite.T())
	suite.mediaSvc.AssertExpectations(suite.T())
}

func TestBusinessServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BusinessServiceTestSuite))
}

func strPtr(s string) *string { return &s }

func (suite *BusinessServiceTestSuite) TestApplyPatch_FirstWriteCreatesDraft() {
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(nil, pgx.ErrNoRows).Once()

	var persisted *models.BusinessDraft
	suite.businessRepo.On("Upsert", suite.ctx, mock.AnythingOfType("*models.BusinessDraft")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.BusinessDraft)
		}).Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	patch := &models.BusinessPatch{BusinessName: strPtr("Sharma Motors")}
	result, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, patch)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusDraft, result.Status)
	assert.Equal(suite.T(), "Sharma Motors", result.BusinessName)
	assert.False(suite.T(), result.CreatedAt.IsZero())
	require.NotNil(suite.T(), persisted)
	assert.Equal(suite.T(), suite.ownerID, persisted.OwnerID)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_SparseMergeKeepsOtherFields() {
	prev := &models.BusinessDraft{
		OwnerID:      suite.ownerID,
		Status:       models.StatusDraft,
		BusinessName: "A",
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()
	suite.businessRepo.On("Upsert", suite.ctx, mock.AnythingOfType("*models.BusinessDraft")).Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	patch := &models.BusinessPatch{BusinessDescription: strPtr("desc")}
	result, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, patch)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusDraft, result.Status)
	assert.Equal(suite.T(), "A", result.BusinessName)
	assert.Equal(suite.T(), "desc", result.BusinessDescription)
	assert.Equal(suite.T(), prev.CreatedAt, result.CreatedAt)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_StatusDoesNotRegressOnceSubmitted() {
	prev := &models.BusinessDraft{
		OwnerID:      suite.ownerID,
		Status:       models.StatusSubmitted,
		BusinessName: "A",
	}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()
	suite.businessRepo.On("Upsert", suite.ctx, mock.AnythingOfType("*models.BusinessDraft")).Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	patch := &models.BusinessPatch{
		Status:       strPtr(models.StatusDraft),
		BusinessName: strPtr("B"),
	}
	result, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, patch)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusSubmitted, result.Status)
	assert.Equal(suite.T(), "B", result.BusinessName)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_RejectedReset() {
	prev := &models.BusinessDraft{OwnerID: suite.ownerID, Status: models.StatusRejected}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()
	suite.businessRepo.On("Upsert", suite.ctx, mock.AnythingOfType("*models.BusinessDraft")).Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	result, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, &models.BusinessPatch{
		Status: strPtr(models.StatusDraft),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusDraft, result.Status)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_ValidationFailureHasNoSideEffects() {
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(nil, pgx.ErrNoRows).Once()

	patch := &models.BusinessPatch{BusinessType: strPtr("hybrid")}
	_, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, patch)

	var ve *common.ValidationError
	require.ErrorAs(suite.T(), err, &ve)
	suite.businessRepo.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_ShopFieldsRejectedOnVehicleDraft() {
	prev := &models.BusinessDraft{
		OwnerID:          suite.ownerID,
		Status:           models.StatusDraft,
		BusinessName:     "Sharma Motors",
		BusinessType:     models.BusinessTypeBoth,
		BusinessCategory: "Cars",
		VehicleTypes:     []string{"4 wheeler"},
	}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()

	// The category key is absent; the stored category still anchors
	// the branch rules.
	patch := &models.BusinessPatch{
		ShopType: strPtr(models.ShopTypeLocal),
		Status:   strPtr(models.StatusSubmitted),
	}
	_, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, patch)

	var ve *common.ValidationError
	require.ErrorAs(suite.T(), err, &ve)
	assert.Contains(suite.T(), ve.Message, "does not apply")
	suite.businessRepo.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_BrandOverflowRejectedWithoutCategoryKey() {
	prev := &models.BusinessDraft{
		OwnerID:          suite.ownerID,
		Status:           models.StatusDraft,
		BusinessName:     "City Electronics",
		BusinessType:     models.BusinessTypeOffline,
		BusinessCategory: "Electronics",
		ShopType:         models.ShopTypeLocal,
		Brands:           []uuid.UUID{uuid.New()},
	}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()

	overflow := make([]uuid.UUID, 9)
	for i := range overflow {
		overflow[i] = uuid.New()
	}
	patch := &models.BusinessPatch{
		Brands: &overflow,
		Status: strPtr(models.StatusSubmitted),
	}
	_, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, patch)

	var ve *common.ValidationError
	require.ErrorAs(suite.T(), err, &ve)
	assert.Contains(suite.T(), ve.Message, "at most 5")
	suite.businessRepo.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_ReplacedLogoIsDiscarded() {
	oldLogo := &models.StoredRef{Path: "image/old.png", PublicURL: "https://cdn.example.com/old.png"}
	newLogo := &models.StoredRef{Path: "image/new.png", PublicURL: "https://cdn.example.com/new.png"}
	prev := &models.BusinessDraft{
		OwnerID:      suite.ownerID,
		Status:       models.StatusDraft,
		BusinessName: "Sharma Motors",
		BusinessLogo: oldLogo,
	}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()
	suite.businessRepo.On("Upsert", suite.ctx, mock.AnythingOfType("*models.BusinessDraft")).Return(nil).Once()
	suite.mediaSvc.On("Discard", suite.ctx, oldLogo).Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	result, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, &models.BusinessPatch{
		BusinessLogo: newLogo,
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), newLogo, result.BusinessLogo)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_SubmitRequiresCompleteness() {
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(nil, pgx.ErrNoRows).Once()
	suite.locationRepo.On("ListByOwner", suite.ctx, suite.ownerID).Return([]*models.BusinessLocation{}, nil).Once()
	suite.brandSvc.On("EnsureActive", suite.ctx, mock.Anything).Return(nil).Maybe()

	patch := &models.BusinessPatch{
		Status:       strPtr(models.StatusSubmitted),
		BusinessName: strPtr("Sharma Motors"),
	}
	_, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, patch)

	var ve *common.ValidationError
	require.ErrorAs(suite.T(), err, &ve)
	suite.businessRepo.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_SubmitChecksBrandCatalog() {
	brandID := uuid.New()
	prev := &models.BusinessDraft{
		OwnerID:           suite.ownerID,
		Status:            models.StatusDraft,
		BusinessName:      "City Electronics",
		BusinessType:      models.BusinessTypeOffline,
		BusinessCategory:  "Electronics",
		ShopType:          models.ShopTypeAuthorised,
		Brands:            []uuid.UUID{brandID},
		ContactNumber:     "9876543210",
		PrimaryLocationID: "loc-1",
	}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()
	suite.locationRepo.On("ListByOwner", suite.ctx, suite.ownerID).
		Return([]*models.BusinessLocation{{ID: "loc-1", OwnerID: suite.ownerID}}, nil).Once()
	suite.brandSvc.On("EnsureActive", suite.ctx, []uuid.UUID{brandID}).
		Return(common.NewValidationError("one or more selected brands are no longer available")).Once()

	_, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, &models.BusinessPatch{
		Status: strPtr(models.StatusSubmitted),
	})

	var ve *common.ValidationError
	require.ErrorAs(suite.T(), err, &ve)
	suite.businessRepo.AssertNotCalled(suite.T(), "Upsert", mock.Anything, mock.Anything)
}

func (suite *BusinessServiceTestSuite) TestApplyPatch_LocationsTriggerReconcile() {
	prev := &models.BusinessDraft{
		OwnerID:      suite.ownerID,
		Status:       models.StatusDraft,
		BusinessName: "Sharma Motors",
	}
	lat, lng := 18.52, 73.85
	incoming := []models.LocationInput{
		{ID: "loc-1", FullAddress: "12 MG Road, Pune", Latitude: &lat, Longitude: &lng},
	}
	existing := []*models.BusinessLocation{}

	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(prev, nil).Once()
	suite.locationRepo.On("ListByOwner", suite.ctx, suite.ownerID).Return(existing, nil).Once()
	suite.businessRepo.On("Upsert", suite.ctx, mock.AnythingOfType("*models.BusinessDraft")).Return(nil).Once()
	suite.locationSvc.On("Reconcile", suite.ctx, mock.AnythingOfType("*models.BusinessDraft"),
		existing, incoming, (*models.StoredRef)(nil), "").Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	result, err := suite.service.ApplyPatch(suite.ctx, suite.ownerID, &models.BusinessPatch{
		Locations:         &incoming,
		PrimaryLocationID: strPtr("loc-1"),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "loc-1", result.PrimaryLocationID)
}

func (suite *BusinessServiceTestSuite) TestAttachKYCVideo_OnlyWhileUnderReview() {
	video := &models.StoredRef{Path: "video/v.mp4", PublicURL: "https://cdn.example.com/v.mp4"}

	draft := &models.BusinessDraft{OwnerID: suite.ownerID, Status: models.StatusDraft}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(draft, nil).Once()

	err := suite.service.AttachKYCVideo(suite.ctx, suite.ownerID, video)
	var ve *common.ValidationError
	require.ErrorAs(suite.T(), err, &ve)

	pending := &models.BusinessDraft{OwnerID: suite.ownerID, Status: models.StatusPending}
	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(pending, nil).Once()
	suite.businessRepo.On("SetKYCVideo", suite.ctx, suite.ownerID, video).Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	require.NoError(suite.T(), suite.service.AttachKYCVideo(suite.ctx, suite.ownerID, video))
}

func (suite *BusinessServiceTestSuite) TestAttachKYCVideo_ReplacedVideoIsDiscarded() {
	oldVideo := &models.StoredRef{Path: "video/old.mp4", PublicURL: "https://cdn.example.com/old.mp4"}
	newVideo := &models.StoredRef{Path: "video/new.mp4", PublicURL: "https://cdn.example.com/new.mp4"}
	draft := &models.BusinessDraft{OwnerID: suite.ownerID, Status: models.StatusSubmitted, KYCVideo: oldVideo}

	suite.businessRepo.On("GetByOwner", suite.ctx, suite.ownerID).Return(draft, nil).Once()
	suite.businessRepo.On("SetKYCVideo", suite.ctx, suite.ownerID, newVideo).Return(nil).Once()
	suite.mediaSvc.On("Discard", suite.ctx, oldVideo).Return(nil).Once()
	suite.auditRepo.On("Create", suite.ctx, mock.AnythingOfType("*models.AuditLog")).Return(nil)
	suite.cacheSvc.On("DeleteBusinessDraft", suite.ctx, suite.ownerID).Return(nil).Once()

	require.NoError(suite.T(), suite.service.AttachKYCVideo(suite.ctx, suite.ownerID, newVideo))
}

func TestMergeDraft_IdempotentExceptUpdatedAt(t *testing.T) {
	prev := &models.BusinessDraft{
		Status:       models.StatusDraft,
		BusinessName: "A",
		CreatedAt:    time.Now().Add(-time.Hour),
	}
	patch := &models.BusinessPatch{
		BusinessDescription: strPtr("desc"),
		Email:               strPtr("owner@example.com"),
	}

	now := time.Now()
	first := MergeDraft(prev, patch, models.StatusDraft, now)
	second := MergeDraft(first, patch, models.StatusDraft, now.Add(time.Minute))

	first.UpdatedAt = time.Time{}
	second.UpdatedAt = time.Time{}
	assert.Equal(t, first, second)
}

func TestMergeDraft_CategorySwitchClearsOtherBranch(t *testing.T) {
	prev := &models.BusinessDraft{
		Status:           models.StatusDraft,
		BusinessCategory: "Electronics",
		ShopType:         models.ShopTypeLocal,
		Brands:           []uuid.UUID{uuid.New()},
	}
	types := []string{"4 wheeler"}
	patch := &models.BusinessPatch{
		BusinessCategory: strPtr("Cars"),
		VehicleTypes:     &types,
	}

	next := MergeDraft(prev, patch, models.StatusDraft, time.Now())

	assert.Equal(t, "Cars", next.BusinessCategory)
	assert.Equal(t, types, next.VehicleTypes)
	assert.Empty(t, next.ShopType)
	assert.Empty(t, next.Brands)
}
