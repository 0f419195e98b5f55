// Package catalog provides read-through access to the public storefront
// catalog: categories, filtered product listings and product detail.
package catalog

import (
	"context"
	"net/url"

	"github.com/ducanh0310/phu-hung-galaxy/client/api"
)

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl"`
	Description   string  `json:"description"`
	SubcategoryID string  `json:"subcategoryId"`
}

type Subcategory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	CategoryID string `json:"categoryId"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Icon          string        `json:"icon"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.api.Get(ctx, "/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Products lists products, optionally filtered by subcategory id and/or a
// search term.
func (s *Service) Products(ctx context.Context, subcategory, query string) ([]Product, error) {
	params := url.Values{}
	if subcategory != "" {
		params.Set("subcategory", subcategory)
	}
	if query != "" {
		params.Set("q", query)
	}

	path := "/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var products []Product
	if err := s.api.Get(ctx, path, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Service) Product(ctx context.Context, id string) (*Product, error) {
	var product Product
	if err := s.api.Get(ctx, "/products/"+id, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
