package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParentRef(t *testing.T) {
	tests := []struct {
		name       string
		parentType string
		id         string
		want       ParentRef
		wantErr    bool
	}{
		{"post", "post", "p1", PostParent("p1"), false},
		{"project", "project", "p2", ProjectParent("p2"), false},
		{"service", "service", "web-design", ServiceParent("web-design"), false},
		{"unknown type", "page", "p3", ParentRef{}, true},
		{"empty id", "post", "", ParentRef{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseParentRef(tt.parentType, tt.id)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidParent))
				assert.False(t, got.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestParentRef_Accessors(t *testing.T) {
	ref := ProjectParent("abc")
	assert.Equal(t, ParentTypeProject, ref.Type())
	assert.Equal(t, "abc", ref.ID())
	assert.Equal(t, "project:abc", ref.String())
	assert.False(t, ParentRef{}.Valid())
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("hello-world"))
	assert.True(t, ValidSlug("v2"))
	assert.False(t, ValidSlug("Hello-World"))
	assert.False(t, ValidSlug("hello--world"))
	assert.False(t, ValidSlug("-hello"))
	assert.False(t, ValidSlug("hello world"))
	assert.False(t, ValidSlug(""))
}

func TestSEO_Robots(t *testing.T) {
	assert.Equal(t, "index, follow", (&SEO{}).Robots())
	assert.Equal(t, "noindex, nofollow", (&SEO{NoIndex: true, NoFollow: true}).Robots())
	assert.Equal(t, "index, nofollow", (&SEO{NoFollow: true}).Robots())
}

func TestOrderOr(t *testing.T) {
	three := 3
	assert.Equal(t, 3, OrderOr(&three, 7))
	assert.Equal(t, 7, OrderOr(nil, 7))
}

func TestSavePostPayload_Validate(t *testing.T) {
	bad := Status("live")
	empty := ""
	slug := "Not A Slug"
	format := ContentFormat("rst")
	gallery := []GalleryItem{{URL: "a.png"}, {Alt: "missing url"}}

	payload := SavePostPayload{
		Entity: &PostPatch{Slug: &slug, Title: &empty, Status: &bad},
		AggregatesPayload: AggregatesPayload{
			ContentFormat: &format,
			Gallery:       &gallery,
		},
	}

	err := payload.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 5)
	assert.Contains(t, verr.Problems, "gallery[1]: url is required")
}

func TestSaveProjectPayload_Validate(t *testing.T) {
	ids := []string{"a", ""}
	payload := SaveProjectPayload{RelatedProjectIDs: &ids}

	err := payload.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "related_project_ids[1]")

	ok := SaveProjectPayload{}
	assert.NoError(t, ok.Validate())
}

func TestPost_Validate(t *testing.T) {
	assert.NoError(t, (&Post{Slug: "hello-world", Title: "Hello"}).Validate())

	err := (&Post{Slug: "Hello World", Status: "live"}).Validate()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Problems, 3)
}

func TestProject_Validate(t *testing.T) {
	assert.NoError(t, (&Project{Slug: "site", Title: "Site", Status: StatusPublished}).Validate())
	assert.Error(t, (&Project{Slug: "site"}).Validate())
}

func TestAggregatesPayload_ValidateItems(t *testing.T) {
	downloads := []DownloadItem{{URL: "a.pdf", FileSize: -1}}
	faqs := []FAQItem{{Answer: "no question"}}
	recommended := []RecommendedItem{{Title: "no url"}}
	payload := AggregatesPayload{
		Downloads:   &downloads,
		FAQs:        &faqs,
		Recommended: &recommended,
		SEO:         &SEO{StructuredData: []byte(`{broken`)},
	}

	var verr *ValidationError
	require.True(t, errors.As(payload.Validate(), &verr))
	assert.Equal(t, []string{
		"downloads[0]: file_size cannot be negative",
		"faqs[0]: question is required",
		"recommended[0]: url is required",
		"seo.structured_data must be valid JSON",
	}, verr.Problems)

	empty := []GalleryItem{}
	assert.NoError(t, (&AggregatesPayload{Gallery: &empty}).Validate())
}
