package repository

import (
	"context"
	"fmt"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	defaultProductsTableName = "products"
	batchWriteLimit          = 25
	maxBatchWriteAttempts    = 5
)

// ProductsAPI is the subset of *dynamodb.Client the repository needs.
type ProductsAPI interface {
	dynamodb.ScanAPIClient
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

type productItem struct {
	ID          string  `dynamodbav:"id"`
	Name        string  `dynamodbav:"name"`
	Description string  `dynamodbav:"description"`
	Price       string  `dynamodbav:"price"`
	Image       string  `dynamodbav:"image"`
	InStock     bool    `dynamodbav:"in_stock"`
	Category    string  `dynamodbav:"category"`
	Rating      float64 `dynamodbav:"rating"`
}

// ProductDynamoRepository reads the product list from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - price is stored as decimal text to keep cents exact
//
// The table is scanned once at startup; the catalog built from it never
// goes back to DynamoDB.

type ProductDynamoRepository struct {
	ddb       ProductsAPI
	tableName string
}

var _ interfaces.ICatalogSource = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb ProductsAPI, tableName string) *ProductDynamoRepository {
	if tableName == "" {
		tableName = defaultProductsTableName
	}
	return &ProductDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductDynamoRepository) LoadProducts(ctx context.Context) ([]entities.Product, error) {
	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var products []entities.Product
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.tableName, err)
		}

		var items []productItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			p, err := fromProductItem(it)
			if err != nil {
				return nil, err
			}
			products = append(products, p)
		}
	}

	log.Info().Str("component", "dynamodb").Str("table", r.tableName).Int("products", len(products)).Msg("products scanned")
	return products, nil
}

// Seed writes products into the table, overwriting items with the same id.
// It is meant for local tables started empty.
func (r *ProductDynamoRepository) Seed(ctx context.Context, products []entities.Product) error {
	for start := 0; start < len(products); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(products))

		reqs := make([]types.WriteRequest, 0, end-start)
		for _, p := range products[start:end] {
			av, err := attributevalue.MarshalMap(toProductItem(p))
			if err != nil {
				return err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		if err := r.batchWrite(ctx, reqs); err != nil {
			return err
		}
	}

	log.Info().Str("component", "dynamodb").Str("table", r.tableName).Int("products", len(products)).Msg("products seeded")
	return nil
}

func (r *ProductDynamoRepository) batchWrite(ctx context.Context, reqs []types.WriteRequest) error {
	pending := map[string][]types.WriteRequest{r.tableName: reqs}
	for attempt := 0; attempt < maxBatchWriteAttempts && len(pending[r.tableName]) > 0; attempt++ {
		out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{RequestItems: pending})
		if err != nil {
			return fmt.Errorf("batch write %s: %w", r.tableName, err)
		}
		pending = out.UnprocessedItems
	}
	if left := len(pending[r.tableName]); left > 0 {
		return fmt.Errorf("batch write %s: %d items left unprocessed", r.tableName, left)
	}
	return nil
}

func fromProductItem(it productItem) (entities.Product, error) {
	price, err := decimal.NewFromString(it.Price)
	if err != nil {
		return entities.Product{}, fmt.Errorf("product %s: invalid price %q: %w", it.ID, it.Price, err)
	}
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Price:       price,
		Image:       it.Image,
		InStock:     it.InStock,
		Category:    it.Category,
		Rating:      it.Rating,
	}, nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.String(),
		Image:       p.Image,
		InStock:     p.InStock,
		Category:    p.Category,
		Rating:      p.Rating,
	}
}
