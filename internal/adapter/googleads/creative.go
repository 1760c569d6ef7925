package googleads

import (
	"context"
	"fmt"

	"adpilot/internal/core/domain"
)

// CreateImageAsset uploads data as an image asset named name.
func (c *Client) CreateImageAsset(ctx context.Context, customerID string, data []byte, name string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("create image asset %q: empty image", name)
	}
	res, err := mutateOne(ctx, c, customerID, serviceAssets, create(asset{
		Name:       name,
		Type:       "IMAGE",
		ImageAsset: imageAssetInfo{Data: data},
	}))
	if err != nil {
		return "", fmt.Errorf("create image asset %q: %w", name, err)
	}
	return res, nil
}

// CreateAdGroup creates an ad group under spec.Campaign.
func (c *Client) CreateAdGroup(ctx context.Context, customerID string, spec domain.AdGroupSpec) (string, error) {
	res, err := mutateOne(ctx, c, customerID, serviceAdGroups, create(adGroup{
		Name:     spec.Name,
		Campaign: spec.Campaign,
		Status:   string(spec.Status),
		Type:     string(spec.Type),
	}))
	if err != nil {
		return "", fmt.Errorf("create ad group: %w", err)
	}
	return res, nil
}

// CreateResponsiveDisplayAd creates a responsive display ad in ad.AdGroup.
// Landscape images are sent as marketing images.
func (c *Client) CreateResponsiveDisplayAd(ctx context.Context, customerID string, rda domain.ResponsiveDisplayAd) (string, error) {
	res, err := mutateOne(ctx, c, customerID, serviceAdGroupAds, create(adGroupAd{
		AdGroup: rda.AdGroup,
		Status:  string(rda.Status),
		Ad: ad{
			FinalURLs: rda.FinalURLs,
			ResponsiveDisplayAd: responsiveDisplayAd{
				BusinessName:          rda.BusinessName,
				Headlines:             textAssets(rda.Headlines),
				LongHeadline:          textAsset{Text: rda.LongHeadline},
				Descriptions:          textAssets(rda.Descriptions),
				CallToActionText:      rda.CallToAction,
				MarketingImages:       imageAssets(rda.LandscapeImages),
				SquareMarketingImages: imageAssets(rda.SquareImages),
			},
		},
	}))
	if err != nil {
		return "", fmt.Errorf("create responsive display ad: %w", err)
	}
	return res, nil
}
