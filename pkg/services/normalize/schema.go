package normalize

import "github.com/de-tools/profit-atlas/pkg/models/domain"

// orderSchema lists the fallback chains for every canonical order field.
// The order platform has renamed fields across API versions, so each chain
// covers every spelling seen in the wild.
type orderSchema struct {
	orderID        Chain
	date           Chain
	status         Chain
	items          Chain
	total          Chain
	usdAmount      Chain
	currencyCode   Chain
	currencySymbol Chain
	paymentMethod  Chain
	refund         Chain
	chargeback     Chain
	upsell         Chain
	country        Chain
	campaign       Chain
	utmSource      Chain
	utmMedium      Chain
	utmCampaign    Chain
	marketerID     Chain
	advertiserID   Chain
	campaignName   Chain
}

type itemSchema struct {
	sku         Chain
	productType Chain
	quantity    Chain
	price       Chain
}

// adSchema lists the fallback chains for every canonical ad-spend field of
// one ad network.
type adSchema struct {
	campaignID     Chain
	campaignName   Chain
	date           Chain
	spend          Chain
	currencyCode   Chain
	currencySymbol Chain
	clicks         Chain
	impressions    Chain
	conversions    Chain
	revenue        Chain
	marketerID     Chain
	advertiserID   Chain
}

var defaultOrderSchema = orderSchema{
	orderID:        Chain{Field("orderId"), Field("order_id"), Field("id")},
	date:           Chain{Field("date"), Field("orderDate"), Field("createdAt"), Field("created_at")},
	status:         Chain{Field("orderStatus"), Field("status")},
	items:          Chain{Field("items"), Field("lineItems"), Field("products")},
	total:          Chain{Field("total"), Field("totalAmount"), Field("amount")},
	usdAmount:      Chain{Field("usdAmount"), Field("usd_amount"), Field("amountUsd")},
	currencyCode:   Chain{Field("currencyCode"), Field("currency")},
	currencySymbol: Chain{Field("currencySymbol"), Field("currency_symbol")},
	paymentMethod:  Chain{Field("paymentMethod"), Field("payment_method"), Field("gateway")},
	refund:         Chain{Field("refund"), Field("refundAmount"), Field("refunded")},
	chargeback:     Chain{Field("chargeback"), Field("chargebackAmount")},
	upsell:         Chain{Field("upsell"), Field("hasUpsell"), Field("isUpsell")},
	country:        Chain{Field("country"), Field("countryCode"), Field("shipping", "country")},
	campaign:       Chain{Field("campaign"), Field("brand")},
	utmSource:      Chain{Field("utmSource"), Field("utm_source"), Field("tracking", "utmSource")},
	utmMedium:      Chain{Field("utmMedium"), Field("utm_medium"), Field("tracking", "utmMedium")},
	utmCampaign:    Chain{Field("utmCampaign"), Field("utm_campaign"), Field("tracking", "utmCampaign")},
	marketerID:     Chain{Field("marketerId"), Field("marketer_id")},
	advertiserID:   Chain{Field("advertiserId"), Field("advertiser_id")},
	campaignName:   Chain{Field("campaignName"), Field("campaign_name")},
}

var defaultItemSchema = itemSchema{
	sku:         Chain{Field("sku"), Field("productSku"), Field("product_sku")},
	productType: Chain{Field("productType"), Field("product_type"), Field("type")},
	quantity:    Chain{Field("quantity"), Field("qty")},
	price:       Chain{Field("price"), Field("amount")},
}

// adSchemas holds one schema per supported network. Outbrain nests most
// metrics under "metrics", Taboola reports flat fields with "spent", AdUp
// uses "cost" and a "budget" sub-object.
var adSchemas = map[domain.Platform]adSchema{
	domain.PlatformOutbrain: {
		campaignID:     Chain{Field("campaignId"), Field("id")},
		campaignName:   Chain{Field("campaignName"), Field("name")},
		date:           Chain{Field("date"), Field("day"), Field("metrics", "date")},
		spend:          Chain{Field("spend"), Field("spent"), Field("metrics", "spend"), Field("budget", "amount")},
		currencyCode:   Chain{Field("currencyCode"), Field("currency"), Field("budget", "currency")},
		currencySymbol: Chain{Field("currencySymbol")},
		clicks:         Chain{Field("clicks"), Field("metrics", "clicks")},
		impressions:    Chain{Field("impressions"), Field("metrics", "impressions")},
		conversions:    Chain{Field("conversions"), Field("metrics", "conversions")},
		revenue:        Chain{Field("revenue"), Field("metrics", "sumValue"), Field("metrics", "revenue")},
		marketerID:     Chain{Field("marketerId"), Field("marketer_id")},
		advertiserID:   Chain{Field("advertiserId")},
	},
	domain.PlatformTaboola: {
		campaignID:     Chain{Field("campaignId"), Field("campaign"), Field("id")},
		campaignName:   Chain{Field("campaignName"), Field("campaign_name"), Field("name")},
		date:           Chain{Field("date"), Field("date_end_period")},
		spend:          Chain{Field("spent"), Field("spend"), Field("metrics", "spend")},
		currencyCode:   Chain{Field("currency"), Field("currencyCode")},
		currencySymbol: Chain{Field("currencySymbol")},
		clicks:         Chain{Field("clicks")},
		impressions:    Chain{Field("impressions"), Field("visible_impressions")},
		conversions:    Chain{Field("conversions"), Field("cpa_actions_num")},
		revenue:        Chain{Field("revenue"), Field("conversions_value")},
		marketerID:     Chain{Field("marketerId")},
		advertiserID:   Chain{Field("advertiserId"), Field("account_id")},
	},
	domain.PlatformAdUp: {
		campaignID:     Chain{Field("campaignId"), Field("campaign_id"), Field("id")},
		campaignName:   Chain{Field("campaignName"), Field("campaign"), Field("name")},
		date:           Chain{Field("date"), Field("day")},
		spend:          Chain{Field("cost"), Field("spend"), Field("budget", "amount")},
		currencyCode:   Chain{Field("currencyCode"), Field("currency")},
		currencySymbol: Chain{Field("currencySymbol"), Field("budget", "currencySymbol")},
		clicks:         Chain{Field("clicks")},
		impressions:    Chain{Field("impressions")},
		conversions:    Chain{Field("conversions")},
		revenue:        Chain{Field("revenue"), Field("conversionValue")},
		marketerID:     Chain{Field("marketerId")},
		advertiserID:   Chain{Field("advertiserId"), Field("accountId")},
	},
}
