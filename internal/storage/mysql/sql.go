package mysql

// Catalog order is position, then insertion order.
const listCaterersSQL = `
SELECT
  slug,
  name,
  city,
  county,
  cuisines,
  price_tier,
  rating,
  review_count,
  hero_image,
  tagline,
  about,
  services,
  sample_menu,
  gallery
FROM caterers
ORDER BY position, id
`

// Used by seeding tools and tests; the service itself only reads.
const insertCatererSQL = `
INSERT INTO caterers
  (position, slug, name, city, county, cuisines, price_tier, rating, review_count,
   hero_image, tagline, about, services, sample_menu, gallery)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  position     = VALUES(position),
  name         = VALUES(name),
  city         = VALUES(city),
  county       = VALUES(county),
  cuisines     = VALUES(cuisines),
  price_tier   = VALUES(price_tier),
  rating       = VALUES(rating),
  review_count = VALUES(review_count),
  hero_image   = VALUES(hero_image),
  tagline      = VALUES(tagline),
  about        = VALUES(about),
  services     = VALUES(services),
  sample_menu  = VALUES(sample_menu),
  gallery      = VALUES(gallery),
  updated_at   = CURRENT_TIMESTAMP
`
