package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/tasktracker/internal/proto"
)

func (s *GRPCServer) CreateCategory(ctx context.Context, req *pb.CreateCategoryRequest) (*pb.Category, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.categories.Create(ctx, id.UserID, req.GetName(), req.GetColor())
	if err != nil {
		return nil, toStatus(err)
	}
	return toCategory(c), nil
}

func (s *GRPCServer) ListCategories(ctx context.Context, req *pb.ListCategoriesRequest) (*pb.ListCategoriesResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	cats, err := s.categories.List(ctx, id.UserID)
	if err != nil {
		return nil, toStatus(err)
	}
	res := &pb.ListCategoriesResponse{Categories: make([]*pb.Category, 0, len(cats))}
	for _, c := range cats {
		res.Categories = append(res.Categories, toCategory(c))
	}
	return res, nil
}

func (s *GRPCServer) UpdateCategory(ctx context.Context, req *pb.UpdateCategoryRequest) (*pb.Category, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.categories.Update(ctx, id.UserID, req.GetId(), req.Name, req.Color)
	if err != nil {
		return nil, toStatus(err)
	}
	return toCategory(c), nil
}

func (s *GRPCServer) DeleteCategory(ctx context.Context, req *pb.CategoryIdRequest) (*pb.MessageResponse, error) {
	id, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Delete(ctx, id.UserID, req.GetId()); err != nil {
		return nil, toStatus(err)
	}
	return &pb.MessageResponse{Message: "Category deleted"}, nil
}
