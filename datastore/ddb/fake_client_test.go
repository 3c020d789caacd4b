/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeClient keeps items in memory keyed by PK/SK and understands the
// single-equality key conditions the store issues.
type fakeClient struct {
	mu         sync.Mutex
	items      map[string]map[string]types.AttributeValue
	queryErrs  []error
	queryCalls int
}

func newFakeClient() *fakeClient {
	return &fakeClient{items: make(map[string]map[string]types.AttributeValue)}
}

func attrString(item map[string]types.AttributeValue, name string) string {
	if s, ok := item[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func itemKey(item map[string]types.AttributeValue) string {
	return attrString(item, "PK") + "|" + attrString(item, "SK")
}

func (f *fakeClient) GetItem(_ context.Context, in *sdk.GetItemInput, _ ...func(*sdk.Options)) (*sdk.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &sdk.GetItemOutput{Item: f.items[itemKey(in.Key)]}, nil
}

func (f *fakeClient) PutItem(_ context.Context, in *sdk.PutItemInput, _ ...func(*sdk.Options)) (*sdk.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[itemKey(in.Item)] = in.Item
	return &sdk.PutItemOutput{}, nil
}

func (f *fakeClient) DeleteItem(_ context.Context, in *sdk.DeleteItemInput, _ ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, itemKey(in.Key))
	return &sdk.DeleteItemOutput{}, nil
}

func (f *fakeClient) Query(_ context.Context, in *sdk.QueryInput, _ ...func(*sdk.Options)) (*sdk.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queryCalls++
	if len(f.queryErrs) > 0 {
		err := f.queryErrs[0]
		f.queryErrs = f.queryErrs[1:]
		return nil, err
	}

	parts := strings.Split(*in.KeyConditionExpression, " = ")
	if len(parts) != 2 {
		return nil, fmt.Errorf("unsupported key condition %q", *in.KeyConditionExpression)
	}
	attr := parts[0]
	want := attrString(in.ExpressionAttributeValues, parts[1])

	sortAttr := "SK"
	if in.IndexName != nil {
		sortAttr = "SK1"
	}

	var matched []map[string]types.AttributeValue
	for _, item := range f.items {
		if attrString(item, attr) == want {
			matched = append(matched, item)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return attrString(matched[i], sortAttr) < attrString(matched[j], sortAttr)
	})

	start := 0
	if in.ExclusiveStartKey != nil {
		last := itemKey(in.ExclusiveStartKey)
		for i, item := range matched {
			if itemKey(item) == last {
				start = i + 1
				break
			}
		}
	}
	matched = matched[start:]

	out := &sdk.QueryOutput{}
	if in.Limit != nil && int(*in.Limit) < len(matched) {
		matched = matched[:*in.Limit]
		lastItem := matched[len(matched)-1]
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"PK": lastItem["PK"],
			"SK": lastItem["SK"],
		}
	}
	out.Items = matched
	out.Count = int32(len(matched))
	return out, nil
}

func (f *fakeClient) get(pk, sk string) map[string]types.AttributeValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[pk+"|"+sk]
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queryCalls
}
