package docstore

import (
	"context"
	"fmt"
	"log/slog"

	"docuvault/internal/domain"
	models "docuvault/internal/domain/models/docstore"
	docstoreRepo "docuvault/internal/domain/repositories/docstore"
	docstoreSvc "docuvault/internal/domain/services/docstore"
)

// treeService implements the TreeService interface
type treeService struct {
	folderRepo docstoreRepo.FolderRepository
	docRepo    docstoreRepo.DocumentRepository
	logger     *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(
	folderRepo docstoreRepo.FolderRepository,
	docRepo docstoreRepo.DocumentRepository,
	logger *slog.Logger,
) docstoreSvc.TreeService {
	return &treeService{
		folderRepo: folderRepo,
		docRepo:    docRepo,
		logger:     logger,
	}
}

// folderIndex is a validated parent->children adjacency over the flat folder
// collection. Built once per call in O(n); traversal never rescans the flat
// list and never recurses into a cycle.
type folderIndex struct {
	nodes    map[string]*models.FolderTreeNode
	children map[string][]string // parent id -> child ids, source order
	rootIDs  []string            // source order
}

// BuildTree builds and returns the nested folder/document tree for the store
func (s *treeService) BuildTree(ctx context.Context) (*models.Tree, error) {
	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}

	allDocuments, err := s.docRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Attach documents to their folders. A document pointing at an unknown
	// folder surfaces at the root instead of silently disappearing.
	strayDocuments := make([]models.DocumentTreeNode, 0)
	for _, doc := range allDocuments {
		docNode := models.DocumentTreeNode{
			ID:        doc.ID,
			FileName:  doc.FileName,
			FileType:  doc.FileType,
			FolderID:  doc.FolderID,
			Status:    doc.Status(),
			UpdatedAt: doc.UpdatedAt,
		}

		if parent, exists := index.nodes[doc.FolderID]; exists {
			parent.Documents = append(parent.Documents, docNode)
		} else {
			s.logger.Warn("document references unknown folder",
				"document_id", doc.ID,
				"folder_id", doc.FolderID,
			)
			strayDocuments = append(strayDocuments, docNode)
		}
	}

	// Assemble nested folders from the adjacency, roots in source order
	rootFolders := make([]*models.FolderTreeNode, 0, len(index.rootIDs))
	for _, id := range index.rootIDs {
		rootFolders = append(rootFolders, index.assemble(id, ""))
	}

	tree := &models.Tree{
		Folders:   rootFolders,
		Documents: strayDocuments,
	}

	s.logger.Info("tree built",
		"folder_count", len(index.nodes),
		"document_count", len(allDocuments),
	)

	return tree, nil
}

// BuildSubtree builds the tree rooted at one folder
func (s *treeService) BuildSubtree(ctx context.Context, folderID string) (*models.FolderTreeNode, error) {
	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}

	node, exists := index.nodes[folderID]
	if !exists {
		return nil, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}

	allDocuments, err := s.docRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, doc := range allDocuments {
		if parent, ok := index.nodes[doc.FolderID]; ok {
			parent.Documents = append(parent.Documents, models.DocumentTreeNode{
				ID:        doc.ID,
				FileName:  doc.FileName,
				FileType:  doc.FileType,
				FolderID:  doc.FolderID,
				Status:    doc.Status(),
				UpdatedAt: doc.UpdatedAt,
			})
		}
	}

	return index.assemble(folderID, parentPathOf(index, node)), nil
}

// DescendantIDs returns the ids of a folder and all folders below it, in
// breadth-first source order. Callers use it to expand a folder scope before
// querying documents, since document queries are otherwise non-recursive.
func (s *treeService) DescendantIDs(ctx context.Context, folderID string) ([]string, error) {
	index, err := s.buildIndex(ctx)
	if err != nil {
		return nil, err
	}

	if _, exists := index.nodes[folderID]; !exists {
		return nil, fmt.Errorf("folder %s: %w", folderID, domain.ErrNotFound)
	}

	ids := []string{folderID}
	for cursor := 0; cursor < len(ids); cursor++ {
		ids = append(ids, index.children[ids[cursor]]...)
	}
	return ids, nil
}

// buildIndex loads the flat collection, validates the parent graph, and
// builds the adjacency. Validation runs before any traversal: the source
// store never checks acyclicity, and recursing into a cyclic chain would
// exhaust the stack.
func (s *treeService) buildIndex(ctx context.Context) (*folderIndex, error) {
	allFolders, err := s.folderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	index := &folderIndex{
		nodes:    make(map[string]*models.FolderTreeNode, len(allFolders)),
		children: make(map[string][]string),
	}

	for i := range allFolders {
		folder := &allFolders[i]
		index.nodes[folder.ID] = &models.FolderTreeNode{
			ID:          folder.ID,
			Name:        folder.Name,
			ParentID:    folder.ParentID,
			Color:       folder.Color,
			MenuSection: folder.MenuSection,
			CreatedAt:   folder.CreatedAt,
			Folders:     []*models.FolderTreeNode{},
			Documents:   []models.DocumentTreeNode{},
		}
	}

	if err := validateParentGraph(allFolders); err != nil {
		return nil, err
	}

	for i := range allFolders {
		folder := &allFolders[i]
		if folder.ParentID == nil {
			index.rootIDs = append(index.rootIDs, folder.ID)
		} else {
			index.children[*folder.ParentID] = append(index.children[*folder.ParentID], folder.ID)
		}
	}

	return index, nil
}

// Walk states for cycle detection.
const (
	unvisited = iota
	walking   // on the chain currently being followed
	settled   // proven to reach a root
)

// validateParentGraph rejects dangling parents and cyclic parent chains.
// Each folder's parent chain is walked at most once: chains stop as soon as
// they join an already-settled folder, so the whole check is O(n).
func validateParentGraph(folders []models.Folder) error {
	byID := make(map[string]*models.Folder, len(folders))
	for i := range folders {
		byID[folders[i].ID] = &folders[i]
	}

	state := make(map[string]int, len(folders))
	for i := range folders {
		if state[folders[i].ID] != unvisited {
			continue
		}

		chain := []string{}
		current := &folders[i]
		for {
			if state[current.ID] == walking {
				return &domain.CycleError{FolderID: current.ID}
			}
			if state[current.ID] == settled {
				break
			}
			state[current.ID] = walking
			chain = append(chain, current.ID)

			if current.ParentID == nil {
				break
			}
			parent, exists := byID[*current.ParentID]
			if !exists {
				return &domain.DanglingParentError{
					FolderID: current.ID,
					ParentID: *current.ParentID,
				}
			}
			current = parent
		}

		for _, id := range chain {
			state[id] = settled
		}
	}

	return nil
}

// assemble builds the nested node for id, filling materialized paths as it
// descends. Safe to call only after validateParentGraph has passed.
func (x *folderIndex) assemble(id, parentPath string) *models.FolderTreeNode {
	node := x.nodes[id]
	if parentPath == "" {
		node.Path = node.Name
	} else {
		node.Path = parentPath + "/" + node.Name
	}

	for _, childID := range x.children[id] {
		node.Folders = append(node.Folders, x.assemble(childID, node.Path))
	}
	return node
}

// parentPathOf computes the path of a node's parent by walking up the
// validated graph.
func parentPathOf(x *folderIndex, node *models.FolderTreeNode) string {
	segments := []string{}
	current := node.ParentID
	for current != nil {
		parent, exists := x.nodes[*current]
		if !exists {
			break
		}
		segments = append([]string{parent.Name}, segments...)
		current = parent.ParentID
	}
	if len(segments) == 0 {
		return ""
	}
	path := segments[0]
	for _, seg := range segments[1:] {
		path += "/" + seg
	}
	return path
}
