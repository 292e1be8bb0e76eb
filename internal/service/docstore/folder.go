package docstore

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"docuvault/internal/config"
	"docuvault/internal/domain"
	models "docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
)

// folderService implements the FolderService interface
type folderService struct {
	folderRepo docstoreRepo.FolderRepository
	docRepo    docstoreRepo.DocumentRepository
	logger     *slog.Logger
}

// NewFolderService creates a new folder service
func NewFolderService(
	folderRepo docstoreRepo.FolderRepository,
	docRepo docstoreRepo.DocumentRepository,
	logger *slog.Logger,
) docstoreSvc.FolderService {
	return &folderService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// CreateFolder creates a new folder under an existing parent (or root)
func (s *folderService) CreateFolder(ctx context.Context, req *docstoreSvc.CreateFolderRequest) (*models.Folder, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateSimpleName(name, config.MaxFolderNameLength); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if req.ParentID != nil {
		if _, err := s.folderRepo.GetByID(ctx, *req.ParentID); err != nil {
			if isNotFound(err) {
				return nil, fmt.Errorf("%w: parent folder %s not found", domain.ErrValidation, *req.ParentID)
			}
			return nil, err
		}
	}

	if err := s.checkSiblingName(ctx, req.ParentID, name, ""); err != nil {
		return nil, err
	}

	folder := &models.Folder{
		Name:        name,
		ParentID:    req.ParentID,
		Color:       req.Color,
		MenuSection: req.MenuSection,
	}
	if err := s.folderRepo.Create(ctx, folder); err != nil {
		return nil, err
	}

	if err := s.fillPath(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder created",
		"folder_id", folder.ID,
		"name", folder.Name,
		"parent_id", derefOrRoot(folder.ParentID),
	)
	return folder, nil
}

// GetFolder retrieves a folder with its computed path and derived counts
func (s *folderService) GetFolder(ctx context.Context, id string) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.fillPath(ctx, folder); err != nil {
		return nil, err
	}
	if err := s.fillCounts(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// ListFolders returns the full flat collection with computed paths
func (s *folderService) ListFolders(ctx context.Context) ([]models.Folder, error) {
	folders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	paths := folderPaths(folders)
	childCounts := make(map[string]int, len(folders))
	for i := range folders {
		if folders[i].ParentID != nil {
			childCounts[*folders[i].ParentID]++
		}
	}
	docs, err := s.docRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	docCounts := make(map[string]int, len(folders))
	for i := range docs {
		docCounts[docs[i].FolderID]++
	}

	for i := range folders {
		folders[i].Path = paths[folders[i].ID]
		folders[i].FolderCount = childCounts[folders[i].ID]
		folders[i].DocumentCount = docCounts[folders[i].ID]
	}
	return folders, nil
}

// ListChildren lists immediate child folders; nil parentID selects roots
func (s *folderService) ListChildren(ctx context.Context, parentID *string) ([]models.Folder, error) {
	children, err := s.folderRepo.ListChildren(ctx, parentID)
	if err != nil {
		return nil, err
	}

	parentPath := ""
	if parentID != nil {
		parent, err := s.folderRepo.GetByID(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		if err := s.fillPath(ctx, parent); err != nil {
			return nil, err
		}
		parentPath = parent.Path
	}

	for i := range children {
		if parentPath == "" {
			children[i].Path = children[i].Name
		} else {
			children[i].Path = parentPath + "/" + children[i].Name
		}
	}
	return children, nil
}

// UpdateFolder renames, recolors or moves a folder
func (s *folderService) UpdateFolder(ctx context.Context, id string, req *docstoreSvc.UpdateFolderRequest) (*models.Folder, error) {
	folder, err := s.folderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newName := folder.Name
	if req.Name != nil {
		newName = strings.TrimSpace(*req.Name)
		if err := validateSimpleName(newName, config.MaxFolderNameLength); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
		}
	}

	newParent := folder.ParentID
	if req.ParentID.Present {
		newParent = req.ParentID.Value
		if newParent != nil {
			if *newParent == id {
				return nil, fmt.Errorf("%w: folder cannot be its own parent", domain.ErrValidation)
			}
			if _, err := s.folderRepo.GetByID(ctx, *newParent); err != nil {
				if isNotFound(err) {
					return nil, fmt.Errorf("%w: parent folder %s not found", domain.ErrValidation, *newParent)
				}
				return nil, err
			}
			if err := s.validateNoCircularReference(ctx, id, *newParent); err != nil {
				return nil, err
			}
		}
	}

	// Renames and moves both land in a (possibly new) sibling set
	if newName != folder.Name || !sameParentID(newParent, folder.ParentID) {
		if err := s.checkSiblingName(ctx, newParent, newName, id); err != nil {
			return nil, err
		}
	}

	folder.Name = newName
	folder.ParentID = newParent
	if req.Color != nil {
		folder.Color = *req.Color
	}
	if req.MenuSection != nil {
		folder.MenuSection = *req.MenuSection
	}

	if err := s.folderRepo.Update(ctx, folder); err != nil {
		return nil, err
	}
	if err := s.fillPath(ctx, folder); err != nil {
		return nil, err
	}

	s.logger.Info("folder updated", "folder_id", folder.ID, "name", folder.Name)
	return folder, nil
}

// DeleteFolder deletes a folder. With force unset the folder must be empty;
// with force set, descendants and their documents cascade.
func (s *folderService) DeleteFolder(ctx context.Context, id string, force bool) error {
	if _, err := s.folderRepo.GetByID(ctx, id); err != nil {
		return err
	}

	children, err := s.folderRepo.ListChildren(ctx, &id)
	if err != nil {
		return err
	}
	docs, err := s.docRepo.ListByFolder(ctx, id)
	if err != nil {
		return err
	}

	if !force && (len(children) > 0 || len(docs) > 0) {
		return &domain.ConflictError{
			Message:      fmt.Sprintf("folder %s is not empty (%d folders, %d documents)", id, len(children), len(docs)),
			ResourceType: "folder",
			ResourceID:   id,
		}
	}

	for i := range children {
		if err := s.DeleteFolder(ctx, children[i].ID, true); err != nil {
			return err
		}
	}
	for i := range docs {
		if err := s.docRepo.Delete(ctx, docs[i].ID); err != nil {
			return err
		}
	}

	if err := s.folderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("folder deleted", "folder_id", id, "force", force)
	return nil
}

// checkSiblingName rejects a duplicate folder name within one parent,
// case-insensitively. excludeID skips the folder being renamed.
func (s *folderService) checkSiblingName(ctx context.Context, parentID *string, name, excludeID string) error {
	siblings, err := s.folderRepo.ListChildren(ctx, parentID)
	if err != nil {
		return err
	}
	for i := range siblings {
		if siblings[i].ID == excludeID {
			continue
		}
		if strings.EqualFold(siblings[i].Name, name) {
			return &domain.ConflictError{
				Message:      fmt.Sprintf("folder %q already exists here", name),
				ResourceType: "folder",
				ResourceID:   siblings[i].ID,
			}
		}
	}
	return nil
}

// validateNoCircularReference walks up from the target parent; reaching the
// folder being moved means the move would create a cycle.
func (s *folderService) validateNoCircularReference(ctx context.Context, folderID, targetParentID string) error {
	folders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]*models.Folder, len(folders))
	for i := range folders {
		byID[folders[i].ID] = &folders[i]
	}

	current := targetParentID
	for steps := 0; steps <= len(folders); steps++ {
		if current == folderID {
			return fmt.Errorf("%w: cannot move folder into its own subtree", domain.ErrValidation)
		}
		node, exists := byID[current]
		if !exists || node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
	// Walk exceeded the folder count: the existing graph is already cyclic
	return &domain.CycleError{FolderID: current}
}

func (s *folderService) fillPath(ctx context.Context, folder *models.Folder) error {
	if folder.ParentID == nil {
		folder.Path = folder.Name
		return nil
	}
	folders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return err
	}
	paths := folderPaths(folders)
	if path, ok := paths[folder.ID]; ok {
		folder.Path = path
	} else {
		folder.Path = folder.Name
	}
	return nil
}

func (s *folderService) fillCounts(ctx context.Context, folder *models.Folder) error {
	children, err := s.folderRepo.ListChildren(ctx, &folder.ID)
	if err != nil {
		return err
	}
	docs, err := s.docRepo.ListByFolder(ctx, folder.ID)
	if err != nil {
		return err
	}
	folder.FolderCount = len(children)
	folder.DocumentCount = len(docs)
	return nil
}

// folderPaths materializes every folder's path in one memoized pass. The walk
// is depth-capped so a corrupt cyclic graph degrades to bare names instead of
// recursing forever.
func folderPaths(folders []models.Folder) map[string]string {
	byID := make(map[string]*models.Folder, len(folders))
	for i := range folders {
		byID[folders[i].ID] = &folders[i]
	}

	paths := make(map[string]string, len(folders))
	var pathOf func(f *models.Folder, depth int) string
	pathOf = func(f *models.Folder, depth int) string {
		if p, ok := paths[f.ID]; ok {
			return p
		}
		if f.ParentID == nil || depth > len(folders) {
			paths[f.ID] = f.Name
			return f.Name
		}
		parent, ok := byID[*f.ParentID]
		if !ok {
			paths[f.ID] = f.Name
			return f.Name
		}
		p := pathOf(parent, depth+1) + "/" + f.Name
		paths[f.ID] = p
		return p
	}
	for i := range folders {
		pathOf(&folders[i], 0)
	}
	return paths
}

func sameParentID(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func derefOrRoot(id *string) string {
	if id == nil {
		return "root"
	}
	return *id
}
