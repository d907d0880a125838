package usecase

import (
	"context"
	"time"

	"patipazar/internal/domain/entity"
	"patipazar/internal/domain/repository"
	"patipazar/pkg/errors"
)

type AdvertUseCase struct {
	advertRepo       repository.AdvertRepository
	interactionRepo  repository.InteractionRepository
	matchRequestRepo repository.MatchRequestRepository
}

func NewAdvertUseCase(
	advertRepo repository.AdvertRepository,
	interactionRepo repository.InteractionRepository,
	matchRequestRepo repository.MatchRequestRepository,
) *AdvertUseCase {
	return &AdvertUseCase{
		advertRepo:       advertRepo,
		interactionRepo:  interactionRepo,
		matchRequestRepo: matchRequestRepo,
	}
}

type CreateAdvertInput struct {
	Name       string   `json:"name" validate:"required,min=1,max=100"`
	Species    string   `json:"species" validate:"required,oneof=dog cat bird fish rodent other"`
	Breed      string   `json:"breed" validate:"max=100"`
	Gender     string   `json:"gender" validate:"omitempty,oneof=male female unknown"`
	AgeMonths  int      `json:"age_months" validate:"min=0,max=600"`
	Bio        string   `json:"bio" validate:"max=2000"`
	AdvertType string   `json:"advert_type" validate:"omitempty,oneof=adoption mating"`
	Images     []string `json:"images" validate:"max=10,dive,url"`
	Vaccinated bool     `json:"vaccinated"`
}

type UpdateAdvertInput struct {
	Name       *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Breed      *string   `json:"breed" validate:"omitempty,max=100"`
	Gender     *string   `json:"gender" validate:"omitempty,oneof=male female unknown"`
	AgeMonths  *int      `json:"age_months" validate:"omitempty,min=0,max=600"`
	Bio        *string   `json:"bio" validate:"omitempty,max=2000"`
	Images     *[]string `json:"images" validate:"omitempty,max=10,dive,url"`
	Vaccinated *bool     `json:"vaccinated"`
}

func (uc *AdvertUseCase) Create(ctx context.Context, ownerID string, input CreateAdvertInput) (*entity.Advert, error) {
	advertType := input.AdvertType
	if advertType == "" {
		advertType = entity.AdvertTypeAdoption
	}
	gender := input.Gender
	if gender == "" {
		gender = entity.GenderUnknown
	}
	images := input.Images
	if images == nil {
		images = []string{}
	}

	advert := &entity.Advert{
		OwnerID:    ownerID,
		Name:       input.Name,
		Species:    input.Species,
		Breed:      input.Breed,
		Gender:     gender,
		AgeMonths:  input.AgeMonths,
		Bio:        input.Bio,
		AdvertType: advertType,
		Images:     images,
		Vaccinated: input.Vaccinated,
		IsActive:   true,
	}
	if err := uc.advertRepo.Create(ctx, advert); err != nil {
		return nil, err
	}

	return advert, nil
}

func (uc *AdvertUseCase) GetByID(ctx context.Context, id string) (*entity.Advert, error) {
	return uc.advertRepo.GetByID(ctx, id)
}

func (uc *AdvertUseCase) Update(ctx context.Context, ownerID, advertID string, input UpdateAdvertInput) (*entity.Advert, error) {
	advert, err := uc.ownedAdvert(ctx, ownerID, advertID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		advert.Name = *input.Name
	}
	if input.Breed != nil {
		advert.Breed = *input.Breed
	}
	if input.Gender != nil {
		advert.Gender = *input.Gender
	}
	if input.AgeMonths != nil {
		advert.AgeMonths = *input.AgeMonths
	}
	if input.Bio != nil {
		advert.Bio = *input.Bio
	}
	if input.Images != nil {
		advert.Images = *input.Images
	}
	if input.Vaccinated != nil {
		advert.Vaccinated = *input.Vaccinated
	}
	advert.UpdatedAt = time.Now()

	if err := uc.advertRepo.Update(ctx, advert); err != nil {
		return nil, err
	}

	return advert, nil
}

// Deactivate soft-deletes the advert. It disappears from the feed and from
// matching profiles but stays readable by id for conversation context.
func (uc *AdvertUseCase) Deactivate(ctx context.Context, ownerID, advertID string) error {
	advert, err := uc.ownedAdvert(ctx, ownerID, advertID)
	if err != nil {
		return err
	}
	if !advert.IsActive {
		return nil
	}

	advert.IsActive = false
	advert.UpdatedAt = time.Now()

	return uc.advertRepo.Update(ctx, advert)
}

func (uc *AdvertUseCase) Mine(ctx context.Context, ownerID string) ([]*entity.Advert, error) {
	return uc.advertRepo.ListByOwner(ctx, ownerID, false)
}

// Feed returns active adverts of other users the viewer has not swiped on
// yet, newest first.
func (uc *AdvertUseCase) Feed(ctx context.Context, viewerID string, page, limit int) ([]*entity.Advert, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	seen, err := uc.interactionRepo.ListAdvertIDsByUser(ctx, viewerID)
	if err != nil {
		return nil, 0, err
	}

	return uc.advertRepo.ListFeed(ctx, repository.AdvertFeedFilter{
		ViewerID:         viewerID,
		ExcludeAdvertIDs: seen,
		Page:             page,
		Limit:            limit,
	})
}

type MatingProfile struct {
	*entity.Advert
	HasPendingRequest bool `json:"has_pending_request"`
	IsMatched         bool `json:"is_matched"`
}

// MatingProfiles lists other users' active mating adverts, annotated with the
// viewer's match-request history toward each.
func (uc *AdvertUseCase) MatingProfiles(ctx context.Context, viewerID, species, gender string) ([]*MatingProfile, error) {
	if gender != "" && gender != entity.GenderMale && gender != entity.GenderFemale && gender != entity.GenderUnknown {
		return nil, errors.BadRequest("Invalid gender filter: "+gender, nil)
	}

	adverts, err := uc.advertRepo.ListMatingProfiles(ctx, repository.MatingProfileFilter{
		ViewerID: viewerID,
		Species:  species,
		Gender:   gender,
	})
	if err != nil {
		return nil, err
	}

	profiles := make([]*MatingProfile, 0, len(adverts))
	if len(adverts) == 0 {
		return profiles, nil
	}

	advertIDs := make([]string, 0, len(adverts))
	for _, advert := range adverts {
		advertIDs = append(advertIDs, advert.ID)
	}

	requests, err := uc.matchRequestRepo.ListByFromUserAndAdverts(ctx, viewerID, advertIDs)
	if err != nil {
		return nil, err
	}

	pending := make(map[string]bool)
	matched := make(map[string]bool)
	for _, request := range requests {
		switch request.Status {
		case entity.MatchRequestPending:
			pending[request.AdvertID] = true
		case entity.MatchRequestAccepted:
			matched[request.AdvertID] = true
		}
	}

	for _, advert := range adverts {
		profiles = append(profiles, &MatingProfile{
			Advert:            advert,
			HasPendingRequest: pending[advert.ID],
			IsMatched:         matched[advert.ID],
		})
	}

	return profiles, nil
}

func (uc *AdvertUseCase) ownedAdvert(ctx context.Context, ownerID, advertID string) (*entity.Advert, error) {
	advert, err := uc.advertRepo.GetByID(ctx, advertID)
	if err != nil {
		return nil, err
	}
	if advert.OwnerID != ownerID {
		return nil, errors.Forbidden("This advert does not belong to you", nil)
	}
	return advert, nil
}
