package exifmeta

import (
	"github.com/simonhull/exifmeta/internal/types"
)

// Tag is an alias to types.Tag.
// Re-exporting from internal/types to maintain public API.
type Tag = types.Tag

// IFD0 / IFD1 tags.
const (
	TagImageWidth                = types.TagImageWidth
	TagImageLength               = types.TagImageLength
	TagBitsPerSample             = types.TagBitsPerSample
	TagCompression               = types.TagCompression
	TagPhotometricInterpretation = types.TagPhotometricInterpretation
	TagImageDescription          = types.TagImageDescription
	TagMake                      = types.TagMake
	TagModel                     = types.TagModel
	TagStripOffsets              = types.TagStripOffsets
	TagOrientation               = types.TagOrientation
	TagSamplesPerPixel           = types.TagSamplesPerPixel
	TagRowsPerStrip              = types.TagRowsPerStrip
	TagStripByteCounts           = types.TagStripByteCounts
	TagXResolution               = types.TagXResolution
	TagYResolution               = types.TagYResolution
	TagPlanarConfiguration       = types.TagPlanarConfiguration
	TagResolutionUnit            = types.TagResolutionUnit
	TagTransferFunction          = types.TagTransferFunction
	TagSoftware                  = types.TagSoftware
	TagDateTime                  = types.TagDateTime
	TagArtist                    = types.TagArtist
	TagWhitePoint                = types.TagWhitePoint
	TagPrimaryChromaticities     = types.TagPrimaryChromaticities
	TagJPEGInterchangeFormat     = types.TagJPEGInterchangeFormat
	TagJPEGInterchangeFormatLen  = types.TagJPEGInterchangeFormatLen
	TagYCbCrCoefficients         = types.TagYCbCrCoefficients
	TagYCbCrSubSampling          = types.TagYCbCrSubSampling
	TagYCbCrPositioning          = types.TagYCbCrPositioning
	TagReferenceBlackWhite       = types.TagReferenceBlackWhite
	TagCopyright                 = types.TagCopyright
	TagExifIFDPointer            = types.TagExifIFDPointer
	TagGPSInfoIFDPointer         = types.TagGPSInfoIFDPointer
)

// EXIF sub-IFD tags.
const (
	TagExposureTime             = types.TagExposureTime
	TagFNumber                  = types.TagFNumber
	TagExposureProgram          = types.TagExposureProgram
	TagSpectralSensitivity      = types.TagSpectralSensitivity
	TagISOSpeedRatings          = types.TagISOSpeedRatings
	TagSensitivityType          = types.TagSensitivityType
	TagExifVersion              = types.TagExifVersion
	TagDateTimeOriginal         = types.TagDateTimeOriginal
	TagDateTimeDigitized        = types.TagDateTimeDigitized
	TagOffsetTime               = types.TagOffsetTime
	TagOffsetTimeOriginal       = types.TagOffsetTimeOriginal
	TagComponentsConfiguration  = types.TagComponentsConfiguration
	TagCompressedBitsPerPixel   = types.TagCompressedBitsPerPixel
	TagShutterSpeedValue        = types.TagShutterSpeedValue
	TagApertureValue            = types.TagApertureValue
	TagBrightnessValue          = types.TagBrightnessValue
	TagExposureBiasValue        = types.TagExposureBiasValue
	TagMaxApertureValue         = types.TagMaxApertureValue
	TagSubjectDistance          = types.TagSubjectDistance
	TagMeteringMode             = types.TagMeteringMode
	TagLightSource              = types.TagLightSource
	TagFlash                    = types.TagFlash
	TagFocalLength              = types.TagFocalLength
	TagSubjectArea              = types.TagSubjectArea
	TagMakerNote                = types.TagMakerNote
	TagUserComment              = types.TagUserComment
	TagSubSecTime               = types.TagSubSecTime
	TagSubSecTimeOriginal       = types.TagSubSecTimeOriginal
	TagSubSecTimeDigitized      = types.TagSubSecTimeDigitized
	TagFlashpixVersion          = types.TagFlashpixVersion
	TagColorSpace               = types.TagColorSpace
	TagPixelXDimension          = types.TagPixelXDimension
	TagPixelYDimension          = types.TagPixelYDimension
	TagRelatedSoundFile         = types.TagRelatedSoundFile
	TagInteroperabilityIFDPtr   = types.TagInteroperabilityIFDPtr
	TagFocalPlaneXResolution    = types.TagFocalPlaneXResolution
	TagFocalPlaneYResolution    = types.TagFocalPlaneYResolution
	TagFocalPlaneResolutionUnit = types.TagFocalPlaneResolutionUnit
	TagSensingMethod            = types.TagSensingMethod
	TagFileSource               = types.TagFileSource
	TagSceneType                = types.TagSceneType
	TagCFAPattern               = types.TagCFAPattern
	TagCustomRendered           = types.TagCustomRendered
	TagExposureMode             = types.TagExposureMode
	TagWhiteBalance             = types.TagWhiteBalance
	TagDigitalZoomRatio         = types.TagDigitalZoomRatio
	TagFocalLengthIn35mmFilm    = types.TagFocalLengthIn35mmFilm
	TagSceneCaptureType         = types.TagSceneCaptureType
	TagGainControl              = types.TagGainControl
	TagContrast                 = types.TagContrast
	TagSaturation               = types.TagSaturation
	TagSharpness                = types.TagSharpness
	TagSubjectDistanceRange     = types.TagSubjectDistanceRange
	TagImageUniqueID            = types.TagImageUniqueID
	TagCameraOwnerName          = types.TagCameraOwnerName
	TagBodySerialNumber         = types.TagBodySerialNumber
	TagLensSpecification        = types.TagLensSpecification
	TagLensMake                 = types.TagLensMake
	TagLensModel                = types.TagLensModel
	TagLensSerialNumber         = types.TagLensSerialNumber
)

// GPS sub-IFD tags.
const (
	TagGPSVersionID        = types.TagGPSVersionID
	TagGPSLatitudeRef      = types.TagGPSLatitudeRef
	TagGPSLatitude         = types.TagGPSLatitude
	TagGPSLongitudeRef     = types.TagGPSLongitudeRef
	TagGPSLongitude        = types.TagGPSLongitude
	TagGPSAltitudeRef      = types.TagGPSAltitudeRef
	TagGPSAltitude         = types.TagGPSAltitude
	TagGPSTimeStamp        = types.TagGPSTimeStamp
	TagGPSSatellites       = types.TagGPSSatellites
	TagGPSStatus           = types.TagGPSStatus
	TagGPSMeasureMode      = types.TagGPSMeasureMode
	TagGPSDOP              = types.TagGPSDOP
	TagGPSSpeedRef         = types.TagGPSSpeedRef
	TagGPSSpeed            = types.TagGPSSpeed
	TagGPSTrackRef         = types.TagGPSTrackRef
	TagGPSTrack            = types.TagGPSTrack
	TagGPSImgDirectionRef  = types.TagGPSImgDirectionRef
	TagGPSImgDirection     = types.TagGPSImgDirection
	TagGPSMapDatum         = types.TagGPSMapDatum
	TagGPSDestLatitudeRef  = types.TagGPSDestLatitudeRef
	TagGPSDestLatitude     = types.TagGPSDestLatitude
	TagGPSDestLongitudeRef = types.TagGPSDestLongitudeRef
	TagGPSDestLongitude    = types.TagGPSDestLongitude
	TagGPSDateStamp        = types.TagGPSDateStamp
	TagGPSDifferential     = types.TagGPSDifferential
)

// Interoperability sub-IFD tags.
const (
	TagInteroperabilityIndex   = types.TagInteroperabilityIndex
	TagInteroperabilityVersion = types.TagInteroperabilityVersion
)
