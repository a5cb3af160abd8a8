package mysql

const upsertHotelSQL = `
INSERT INTO hotels
  (id, role, position, name, address, category, star_rating, average_daily_rate,
   occupancy_rate, review_score, distance_m, last_updated)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  role               = VALUES(role),
  position           = VALUES(position),
  name               = VALUES(name),
  address            = VALUES(address),
  category           = VALUES(category),
  star_rating        = VALUES(star_rating),
  average_daily_rate = VALUES(average_daily_rate),
  occupancy_rate     = VALUES(occupancy_rate),
  review_score       = VALUES(review_score),
  distance_m         = VALUES(distance_m),
  last_updated       = VALUES(last_updated),
  updated_at         = CURRENT_TIMESTAMP
`

// completed with one placeholder per kept id
const deleteExceptSQL = `DELETE FROM hotels WHERE id NOT IN `

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const hotelColumns = `
  id, name, address, category, star_rating, average_daily_rate,
  occupancy_rate, review_score, distance_m, last_updated
`

// A catalog has one target; the most recently written one wins if the
// table ever holds more.
const getTargetSQL = `SELECT` + hotelColumns + `
FROM hotels
WHERE role = 'target'
ORDER BY updated_at DESC, id
LIMIT 1
`

// position keeps the order of the catalog file the rows were seeded from.
const listCompetitorsSQL = `SELECT` + hotelColumns + `
FROM hotels
WHERE role = 'competitor'
ORDER BY position, id
`
